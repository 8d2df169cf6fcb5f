package presets_test

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"vidcat/internal/presets"
)

func newFile(t *testing.T) *presets.File {
	t.Helper()
	return presets.NewFile(filepath.Join(t.TempDir(), "presets.toml"))
}

func TestSaveListRoundTrip(t *testing.T) {
	file := newFile(t)

	if err := file.Save(presets.Preset{Name: "loops", And: []string{"loop"}, Not: []string{"hap"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := file.Save(presets.Preset{Name: "anything-4k", Or: []string{"4k"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	list, err := file.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(list))
	}
	if list[0].Name != "anything-4k" || list[1].Name != "loops" {
		t.Fatalf("unexpected order: %v, %v", list[0].Name, list[1].Name)
	}
	if !reflect.DeepEqual(list[1].And, []string{"loop"}) {
		t.Fatalf("unexpected terms: %+v", list[1])
	}
}

func TestSaveOverwritesByName(t *testing.T) {
	file := newFile(t)

	if err := file.Save(presets.Preset{Name: "x", And: []string{"a"}}); err != nil {
		t.Fatal(err)
	}
	if err := file.Save(presets.Preset{Name: "x", And: []string{"b"}}); err != nil {
		t.Fatal(err)
	}

	got, err := file.Get("x")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(got.And, []string{"b"}) {
		t.Fatalf("expected overwrite, got %+v", got)
	}

	list, _ := file.List()
	if len(list) != 1 {
		t.Fatalf("expected 1 preset after overwrite, got %d", len(list))
	}
}

func TestDelete(t *testing.T) {
	file := newFile(t)
	if err := file.Save(presets.Preset{Name: "x"}); err != nil {
		t.Fatal(err)
	}

	if err := file.Delete("x"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := file.Delete("x"); !errors.Is(err, presets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetMissing(t *testing.T) {
	file := newFile(t)
	if _, err := file.Get("nope"); !errors.Is(err, presets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListMissingFileIsEmpty(t *testing.T) {
	file := newFile(t)
	list, err := file.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %v", list)
	}
}

func TestSaveRejectsEmptyName(t *testing.T) {
	file := newFile(t)
	if err := file.Save(presets.Preset{Name: "  "}); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestPresetSpecNormalizes(t *testing.T) {
	preset := presets.Preset{Name: "x", And: []string{" A ", "a"}}
	spec := preset.Spec()
	if !reflect.DeepEqual(spec.And, []string{"a"}) {
		t.Fatalf("unexpected normalized spec: %+v", spec)
	}
}

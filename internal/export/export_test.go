package export_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"vidcat/internal/export"
	"vidcat/internal/testsupport"
)

func TestCopyRenamesOnCollision(t *testing.T) {
	srcDir := t.TempDir()
	destDir := t.TempDir()

	a := filepath.Join(srcDir, "one", "clip.mp4")
	b := filepath.Join(srcDir, "two", "clip.mp4")
	c := filepath.Join(srcDir, "three", "clip.mp4")
	testsupport.WriteFile(t, a, 100)
	testsupport.WriteFile(t, b, 200)
	testsupport.WriteFile(t, c, 300)

	summary, err := export.Copy(context.Background(), []string{a, b, c}, destDir)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if summary.Success != 3 || summary.Failed != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.TotalSize != 600 {
		t.Fatalf("unexpected total size: %d", summary.TotalSize)
	}

	for _, name := range []string{"clip.mp4", "clip_1.mp4", "clip_2.mp4"} {
		if _, err := os.Stat(filepath.Join(destDir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestCopyIsolatesPerFileFailures(t *testing.T) {
	srcDir := t.TempDir()
	destDir := t.TempDir()

	good := filepath.Join(srcDir, "good.mp4")
	testsupport.WriteFile(t, good, 50)
	missing := filepath.Join(srcDir, "missing.mp4")

	summary, err := export.Copy(context.Background(), []string{missing, good}, destDir)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if summary.Success != 1 || summary.Failed != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if len(summary.Errors) != 1 || summary.Errors[0].Path != missing {
		t.Fatalf("unexpected errors: %+v", summary.Errors)
	}
	if _, err := os.Stat(filepath.Join(destDir, "good.mp4")); err != nil {
		t.Fatalf("good file not copied: %v", err)
	}
}

func TestCopyCreatesDestination(t *testing.T) {
	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "a.mp4")
	testsupport.WriteFile(t, src, 10)

	destDir := filepath.Join(t.TempDir(), "nested", "dest")
	summary, err := export.Copy(context.Background(), []string{src}, destDir)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if summary.Success != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestCopyRejectsEmptyDestination(t *testing.T) {
	if _, err := export.Copy(context.Background(), nil, "  "); err == nil {
		t.Fatal("expected error for empty destination")
	}
}

func TestCopyHonorsCancellation(t *testing.T) {
	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "a.mp4")
	testsupport.WriteFile(t, src, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := export.Copy(ctx, []string{src}, t.TempDir()); err == nil {
		t.Fatal("expected context error")
	}
}

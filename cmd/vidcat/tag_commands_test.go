package main

import (
	"context"
	"path/filepath"
	"testing"

	"vidcat/internal/testsupport"
)

func TestTagAddAndRemove(t *testing.T) {
	env := setupCLITestEnv(t)

	store := testsupport.MustOpenStore(t, env.cfg)
	base := t.TempDir()
	rec := testsupport.MustInsert(t, store, filepath.Join(base, "clip.mp4"), "h264", 1920, 1080, "29.97")
	store.Close()

	out, _, err := runCLI(t, []string{"tag", "add", rec.Path, "archival"}, env.configPath)
	if err != nil {
		t.Fatalf("tag add: %v", err)
	}
	requireContains(t, out, `Tagged clip.mp4 with "archival"`)

	out, _, err = runCLI(t, []string{"tag", "add", rec.Path, "archival"}, env.configPath)
	if err != nil {
		t.Fatalf("tag add duplicate: %v", err)
	}
	requireContains(t, out, "already has tag")

	out, _, err = runCLI(t, []string{"tag", "remove", rec.Path, "archival"}, env.configPath)
	if err != nil {
		t.Fatalf("tag remove: %v", err)
	}
	requireContains(t, out, `Removed "archival" from clip.mp4`)

	verify := testsupport.MustOpenStore(t, env.cfg)
	got, err := verify.GetByPath(context.Background(), rec.Path)
	if err != nil {
		t.Fatalf("GetByPath: %v", err)
	}
	if got.Tags != "" {
		t.Fatalf("expected no tags after removal, got %q", got.Tags)
	}
}

func TestTagAddUnknownPath(t *testing.T) {
	env := setupCLITestEnv(t)

	missing := filepath.Join(t.TempDir(), "missing.mp4")
	if _, _, err := runCLI(t, []string{"tag", "add", missing, "x"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown path")
	}
}

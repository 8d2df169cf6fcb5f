package testsupport

import (
	"context"
	"testing"

	"vidcat/internal/catalog"
	"vidcat/internal/config"
)

// MustOpenStore opens a catalog.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// MustInsert creates a record from the arguments and persists it, failing the
// test on any error.
func MustInsert(t testing.TB, store *catalog.Store, path, codec string, width, height int, fps string) catalog.Record {
	t.Helper()

	rec, err := catalog.NewRecord(path, "", codec, width, height, fps)
	if err != nil {
		t.Fatalf("catalog.NewRecord: %v", err)
	}
	if err := store.Insert(context.Background(), rec); err != nil {
		t.Fatalf("store.Insert: %v", err)
	}
	return rec
}

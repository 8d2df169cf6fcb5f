// Package catalog defines the video record model and its SQLite-backed store.
//
// A Record is created exactly once, at first successful extraction for a
// path; the path is the primary identity key. InsertIfAbsent makes the
// dedup check and insert a single atomic statement, so re-ingesting a path
// (even concurrently) never produces a second record. Tags are the only
// field mutated after creation, via UpdateTags.
package catalog

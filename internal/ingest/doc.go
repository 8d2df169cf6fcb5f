// Package ingest drives the end-to-end ingestion batch: discovery, per-file
// dedup against the catalog, metadata extraction, persistence, and progress
// streaming.
//
// Failure semantics: every error after discovery is per-item and reported in
// the event stream ("Error: <name>"); duplicates report "Skipped: <name>".
// The only fatal condition is discovery itself failing, which Run returns
// synchronously. Extraction parallelism is bounded by ingest.workers; with
// more than one worker, Current still counts completions monotonically and
// persistence stays race-free through the store's atomic insert-if-absent.
package ingest

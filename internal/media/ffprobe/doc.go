// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Inspect executes ffprobe and returns a parsed Result; helper methods select
// the first video stream and expose its frame-rate representation for
// downstream normalization.
package ffprobe

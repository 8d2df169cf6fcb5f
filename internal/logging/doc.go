// Package logging builds the slog loggers used across vidcat.
//
// Two output formats are supported: a compact single-line console format for
// interactive use and JSON for machine consumption. Output can fan out to
// stderr and a log file simultaneously. Attr helpers mirror the slog
// constructors so call sites stay terse.
package logging

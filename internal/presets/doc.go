// Package presets persists named filter specifications as a small TOML file.
// Saving an existing name overwrites it; mutations hold an advisory lock so
// concurrent CLI runs serialize their writes.
package presets

// Package config loads, normalizes, and validates vidcat's TOML
// configuration.
//
// Load resolves the config file (explicit path, then
// ~/.config/vidcat/config.toml, then ./vidcat.toml), decodes it over the
// compiled-in defaults, expands ~ in every path field, and validates the
// result. Callers receive a fully-resolved Config with absolute paths.
package config

// Package preview renders short, ephemeral preview clips for interactive
// viewing. A Session retains at most one live preview and deletes the prior
// file before generating the next; preview paths are never persisted.
package preview

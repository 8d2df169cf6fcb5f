// Package export copies a selection of cataloged files to a destination
// directory with collision-safe renaming and aggregate result counts.
package export

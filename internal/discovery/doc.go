// Package discovery finds candidate video files under a set of input paths.
//
// It is a pure traversal: no side effects, no sorting, nonexistent inputs
// skipped silently. The recognized extension set is defined here once and
// shared by every call site.
package discovery

// Package extract turns one video file into a catalog record plus thumbnail.
//
// Failures are categorized by sentinel (ErrProbeFailed, ErrNoVideoStream,
// ErrThumbnail) and wrapped in an *Error carrying the file path. The
// extractor is stateless and safe for concurrent use across files; within a
// single file the probe and the screenshot are strictly sequential.
package extract

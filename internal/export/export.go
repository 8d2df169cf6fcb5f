package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"vidcat/internal/fileutil"
)

// FileError records one failed copy.
type FileError struct {
	Path string
	Err  error
}

// Summary aggregates the outcome of one export batch.
type Summary struct {
	Success   int
	Failed    int
	TotalSize int64
	Errors    []FileError
}

// Copy copies each source file into destDir, renaming on basename collision
// by appending _1, _2, ... before the extension. Per-file failures are
// collected in the summary and never abort the batch; cancellation stops
// between files.
func Copy(ctx context.Context, paths []string, destDir string) (Summary, error) {
	destDir = strings.TrimSpace(destDir)
	if destDir == "" {
		return Summary{}, fmt.Errorf("export destination must not be empty")
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create export destination: %w", err)
	}

	if err := checkFreeSpace(destDir, paths); err != nil {
		return Summary{}, err
	}

	var summary Summary
	for _, src := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if _, err := os.Stat(src); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, FileError{Path: src, Err: err})
			continue
		}

		target := collisionFreePath(destDir, filepath.Base(src))
		written, err := fileutil.CopyVerified(src, target)
		if err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, FileError{Path: src, Err: err})
			continue
		}

		summary.Success++
		summary.TotalSize += written
	}
	return summary, nil
}

// collisionFreePath returns destDir/name, or the first destDir/name_N variant
// whose path does not exist yet.
func collisionFreePath(destDir, name string) string {
	candidate := filepath.Join(destDir, name)
	if _, err := os.Stat(candidate); os.IsNotExist(err) {
		return candidate
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		candidate = filepath.Join(destDir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// checkFreeSpace refuses the batch up front when the destination filesystem
// cannot hold the combined size of the sources.
func checkFreeSpace(destDir string, paths []string) error {
	var needed int64
	for _, src := range paths {
		if info, err := os.Stat(src); err == nil {
			needed += info.Size()
		}
	}
	if needed == 0 {
		return nil
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(destDir, &stat); err != nil {
		// Exotic filesystems may not answer; the copy itself will surface
		// any real shortage.
		return nil
	}
	available := int64(stat.Bavail) * int64(stat.Bsize)
	if available < needed {
		return fmt.Errorf("destination %s has %d bytes free, need %d", destDir, available, needed)
	}
	return nil
}

package discovery

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// videoExtensions is the canonical recognized set, matched case-insensitively.
var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".mov":  {},
	".m4v":  {},
	".avi":  {},
	".mkv":  {},
	".webm": {},
}

// Extensions returns the recognized video extensions in a stable order.
func Extensions() []string {
	return []string{".mp4", ".mov", ".m4v", ".avi", ".mkv", ".webm"}
}

// IsVideoFile reports whether the path carries a recognized video extension.
func IsVideoFile(path string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

type dirIdentity struct {
	dev uint64
	ino uint64
}

// Discover expands the input paths into a flat, depth-first ordered list of
// candidate video files. Inputs may be files or directories; nonexistent
// paths are silently skipped. Directories recurse without a depth bound;
// revisiting a directory already seen by (device, inode) is skipped so
// symlink cycles cannot recurse forever. Entry order within a directory is
// whatever the filesystem returns.
func Discover(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	visited := make(map[dirIdentity]struct{})

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}

		if info.IsDir() {
			if err := walkDir(ctx, abs, visited, &files); err != nil {
				return nil, err
			}
			continue
		}
		if info.Mode().IsRegular() && IsVideoFile(abs) {
			files = append(files, abs)
		}
	}

	return files, nil
}

func walkDir(ctx context.Context, dir string, visited map[dirIdentity]struct{}, files *[]string) error {
	if id, ok := statIdentity(dir); ok {
		if _, seen := visited[id]; seen {
			return nil
		}
		visited[id] = struct{}{}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable directories are skipped like nonexistent inputs.
		return nil
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		full := filepath.Join(dir, entry.Name())
		info, err := os.Stat(full)
		if err != nil {
			continue
		}
		if info.IsDir() {
			if err := walkDir(ctx, full, visited, files); err != nil {
				return err
			}
			continue
		}
		if info.Mode().IsRegular() && IsVideoFile(full) {
			*files = append(*files, full)
		}
	}
	return nil
}

func statIdentity(path string) (dirIdentity, bool) {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return dirIdentity{}, false
	}
	return dirIdentity{dev: uint64(stat.Dev), ino: uint64(stat.Ino)}, true
}

// Package fileutil provides streaming file-copy helpers for export batches.
package fileutil

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// Copy streams src into dst, creating or truncating dst with 0o644
// permissions. It returns the number of bytes written.
func Copy(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, err
	}

	written, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return written, err
	}
	return written, out.Close()
}

// CopyVerified copies src into dst and then re-reads dst, comparing size and
// SHA256 digest against what was read from the source. On any mismatch dst is
// removed and an error returned, so a verified copy is never left truncated
// or corrupted in place.
func CopyVerified(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}

	srcHash := sha256.New()
	written, err := io.Copy(out, io.TeeReader(in, srcHash))
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return 0, err
	}

	size, sum, err := hashFile(dst)
	if err != nil {
		_ = os.Remove(dst)
		return 0, fmt.Errorf("verify copy: %w", err)
	}
	if size != written {
		_ = os.Remove(dst)
		return 0, fmt.Errorf("copy size mismatch: wrote %d bytes, destination holds %d", written, size)
	}
	if sum != fmt.Sprintf("%x", srcHash.Sum(nil)) {
		_ = os.Remove(dst)
		return 0, fmt.Errorf("copy hash mismatch for %s", dst)
	}
	return written, nil
}

func hashFile(path string) (int64, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, "", err
	}
	defer f.Close()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return 0, "", err
	}
	return size, fmt.Sprintf("%x", h.Sum(nil)), nil
}

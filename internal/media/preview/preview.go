package preview

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"vidcat/internal/config"
)

// Generator transcodes short scratch previews with ffmpeg. Preview files are
// ephemeral: nothing about them is ever persisted to the record store.
type Generator struct {
	ffmpegBinary string
	previewDir   string
	timeout      time.Duration
}

// NewGenerator builds a generator from config.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		ffmpegBinary: cfg.Ingest.FFmpegBinary,
		previewDir:   cfg.Paths.PreviewDir,
		timeout:      time.Duration(cfg.Ingest.ProbeTimeoutSeconds) * time.Second,
	}
}

// Generate transcodes up to 10 seconds starting at offset 1s, scaled to width
// 640, into a uniquely named MP4 under the preview directory. The caller owns
// deletion of the returned file.
func (g *Generator) Generate(ctx context.Context, sourcePath string) (string, error) {
	if err := os.MkdirAll(g.previewDir, 0o755); err != nil {
		return "", fmt.Errorf("ensure preview dir: %w", err)
	}

	name := fmt.Sprintf("preview_%d_%s.mp4", time.Now().UnixNano(), uuid.NewString()[:8])
	target := filepath.Join(g.previewDir, name)

	runCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, g.ffmpegBinary,
		"-y", "-v", "error",
		"-ss", "1",
		"-t", "10",
		"-i", sourcePath,
		"-vf", "scale=640:-2",
		"-an",
		target,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("ffmpeg preview: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return target, nil
}

// RemovePrior deletes preview files left behind by earlier invocations so at
// most one preview is live in the preview directory across process restarts.
// Session covers the same lifecycle within a single process.
func (g *Generator) RemovePrior() error {
	matches, err := filepath.Glob(filepath.Join(g.previewDir, "preview_*"))
	if err != nil {
		return fmt.Errorf("scan preview dir: %w", err)
	}
	for _, match := range matches {
		if err := os.Remove(match); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove stale preview: %w", err)
		}
	}
	return nil
}

// Session keeps at most one live preview per viewing session: generating a
// new preview removes the previous file first.
type Session struct {
	gen *Generator

	mu      sync.Mutex
	current string
}

// NewSession wraps a generator with single-preview lifetime tracking.
func NewSession(gen *Generator) *Session {
	return &Session{gen: gen}
}

// Generate replaces the session's current preview with a fresh one for
// sourcePath and returns its location.
func (s *Session) Generate(ctx context.Context, sourcePath string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != "" {
		_ = os.Remove(s.current)
		s.current = ""
	}

	path, err := s.gen.Generate(ctx, sourcePath)
	if err != nil {
		return "", err
	}
	s.current = path
	return path, nil
}

// Close removes the session's remaining preview, if any.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != "" {
		_ = os.Remove(s.current)
		s.current = ""
	}
}

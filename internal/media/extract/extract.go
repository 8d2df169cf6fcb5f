package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"vidcat/internal/catalog"
	"vidcat/internal/config"
	"vidcat/internal/logging"
	"vidcat/internal/media/ffprobe"
)

// Sentinel failure categories. Every extraction failure wraps exactly one of
// these plus the file path, so callers can classify without string matching.
var (
	ErrProbeFailed   = errors.New("probe failed")
	ErrNoVideoStream = errors.New("no video stream")
	ErrThumbnail     = errors.New("thumbnail generation failed")
)

// Error carries the failed file path alongside the categorized cause.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func fail(path string, category error, cause error) error {
	if cause != nil {
		return &Error{Path: path, Err: fmt.Errorf("%w: %w", category, cause)}
	}
	return &Error{Path: path, Err: category}
}

// Extractor derives a catalog record and thumbnail from one video file by
// shelling out to ffprobe and ffmpeg. It never touches the record store.
type Extractor struct {
	ffprobeBinary string
	ffmpegBinary  string
	timeout       time.Duration
	logger        *slog.Logger
}

// New builds an extractor from config. A nil logger discards output.
func New(cfg *config.Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Extractor{
		ffprobeBinary: cfg.Ingest.FFprobeBinary,
		ffmpegBinary:  cfg.Ingest.FFmpegBinary,
		timeout:       time.Duration(cfg.Ingest.ProbeTimeoutSeconds) * time.Second,
		logger:        logger,
	}
}

// Extract probes the file, renders one thumbnail into thumbnailDir, and
// assembles the record. The probe and the thumbnail run strictly in sequence
// because the screenshot depends on stream metadata the probe confirms; each
// external invocation is bounded by the configured timeout.
func (e *Extractor) Extract(ctx context.Context, filePath, thumbnailDir string) (catalog.Record, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return catalog.Record{}, fail(filePath, ErrProbeFailed, err)
	}

	probeCtx, cancel := context.WithTimeout(ctx, e.timeout)
	result, err := ffprobe.Inspect(probeCtx, e.ffprobeBinary, absPath)
	cancel()
	if err != nil {
		return catalog.Record{}, fail(absPath, ErrProbeFailed, err)
	}

	stream := result.FirstVideoStream()
	if stream == nil {
		return catalog.Record{}, fail(absPath, ErrNoVideoStream, nil)
	}

	thumbPath, err := e.renderThumbnail(ctx, absPath, thumbnailDir)
	if err != nil {
		return catalog.Record{}, fail(absPath, ErrThumbnail, err)
	}

	fps := ParseFrameRate(stream.FrameRate())
	rec, err := catalog.NewRecord(absPath, thumbPath, stream.CodecName, stream.Width, stream.Height, fps)
	if err != nil {
		return catalog.Record{}, fail(absPath, ErrProbeFailed, err)
	}

	e.logger.Debug("extracted metadata",
		logging.String("path", absPath),
		logging.String("codec", rec.Codec),
		logging.Int("width", rec.Width),
		logging.Int("height", rec.Height),
		logging.String("fps", rec.FPS),
	)
	return rec, nil
}

// renderThumbnail grabs one frame at offset 1s, scaled to width 320 with
// aspect preserved. The filename combines a monotonic time component with a
// random suffix, so collisions are impossible in practice and no retry is
// needed.
func (e *Extractor) renderThumbnail(ctx context.Context, filePath, thumbnailDir string) (string, error) {
	if err := os.MkdirAll(thumbnailDir, 0o755); err != nil {
		return "", fmt.Errorf("ensure thumbnail dir: %w", err)
	}

	name := fmt.Sprintf("thumb_%d_%s.jpg", time.Now().UnixNano(), uuid.NewString()[:8])
	target := filepath.Join(thumbnailDir, name)

	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, e.ffmpegBinary,
		"-y", "-v", "error",
		"-ss", "1",
		"-i", filePath,
		"-frames:v", "1",
		"-vf", "scale=320:-1",
		target,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("ffmpeg thumbnail: %w: %s", err, strings.TrimSpace(string(output)))
	}
	if _, err := os.Stat(target); err != nil {
		return "", fmt.Errorf("thumbnail missing after ffmpeg: %w", err)
	}
	return target, nil
}

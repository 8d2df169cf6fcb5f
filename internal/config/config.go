package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration for catalog state and media artifacts.
type Paths struct {
	StateDir     string `toml:"state_dir"`
	ThumbnailDir string `toml:"thumbnail_dir"`
	PreviewDir   string `toml:"preview_dir"`
	ExportDir    string `toml:"export_dir"`
	LogDir       string `toml:"log_dir"`
}

// Ingest contains tuning knobs for the ingestion pipeline.
type Ingest struct {
	// Workers bounds parallel metadata extraction. 1 means sequential.
	Workers int `toml:"workers"`
	// ThrottleEvery and ThrottleMillis implement the cooperative pause after
	// every Nth processed file.
	ThrottleEvery  int `toml:"throttle_every"`
	ThrottleMillis int `toml:"throttle_ms"`
	// ProbeTimeoutSeconds bounds each external ffprobe/ffmpeg invocation.
	ProbeTimeoutSeconds int `toml:"probe_timeout_seconds"`
	// FFprobeBinary and FFmpegBinary override the executables found on PATH.
	FFprobeBinary string `toml:"ffprobe_binary"`
	FFmpegBinary  string `toml:"ffmpeg_binary"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for vidcat.
//
// Configuration sections by subsystem:
//   - Paths: catalog state, thumbnail/preview/export directories, logs
//   - Ingest: worker count, throttle cadence, external tool settings
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Ingest  Ingest  `toml:"ingest"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/vidcat/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config
// has all path fields expanded and normalized. The second return value is the
// resolved config path and the third reports whether the file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("vidcat.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	if c.Paths.StateDir, err = ExpandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ThumbnailDir) == "" {
		c.Paths.ThumbnailDir = filepath.Join(c.Paths.StateDir, "thumbnails")
	}
	if c.Paths.ThumbnailDir, err = ExpandPath(c.Paths.ThumbnailDir); err != nil {
		return fmt.Errorf("paths.thumbnail_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.PreviewDir) == "" {
		c.Paths.PreviewDir = filepath.Join(c.Paths.StateDir, "previews")
	}
	if c.Paths.PreviewDir, err = ExpandPath(c.Paths.PreviewDir); err != nil {
		return fmt.Errorf("paths.preview_dir: %w", err)
	}
	if c.Paths.ExportDir, err = ExpandPath(c.Paths.ExportDir); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = filepath.Join(c.Paths.StateDir, "logs")
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}

	if strings.TrimSpace(c.Ingest.FFprobeBinary) == "" {
		c.Ingest.FFprobeBinary = defaultFFprobeBinary
	}
	if strings.TrimSpace(c.Ingest.FFmpegBinary) == "" {
		c.Ingest.FFmpegBinary = defaultFFmpegBinary
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

// EnsureDirectories creates the directories the catalog needs at runtime.
// ExportDir is created on a best-effort basis so the CLI can run when
// external storage is temporarily unavailable.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.StateDir, c.Paths.ThumbnailDir, c.Paths.PreviewDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if strings.TrimSpace(c.Paths.ExportDir) != "" {
		_ = os.MkdirAll(c.Paths.ExportDir, 0o755)
	}
	return nil
}

// DatabasePath returns the catalog database location under the state directory.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Paths.StateDir, "catalog.db")
}

// PresetsPath returns the saved filter presets file location.
func (c *Config) PresetsPath() string {
	return filepath.Join(c.Paths.StateDir, "presets.toml")
}

// SampleConfig returns the commented sample configuration document.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes the sample configuration document to the target path.
func CreateSample(target string) error {
	return os.WriteFile(target, []byte(sampleConfig), 0o644)
}

// ExpandPath expands a leading ~ and resolves the value to an absolute path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

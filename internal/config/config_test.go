package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vidcat/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "share", "vidcat")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.Paths.ThumbnailDir != filepath.Join(wantState, "thumbnails") {
		t.Fatalf("unexpected thumbnail dir: %q", cfg.Paths.ThumbnailDir)
	}
	if cfg.Paths.PreviewDir != filepath.Join(wantState, "previews") {
		t.Fatalf("unexpected preview dir: %q", cfg.Paths.PreviewDir)
	}
	if cfg.Ingest.Workers != 1 {
		t.Fatalf("unexpected default workers: %d", cfg.Ingest.Workers)
	}
	if cfg.Ingest.ThrottleEvery != 5 || cfg.Ingest.ThrottleMillis != 50 {
		t.Fatalf("unexpected throttle defaults: every=%d ms=%d", cfg.Ingest.ThrottleEvery, cfg.Ingest.ThrottleMillis)
	}
	if cfg.Ingest.FFprobeBinary != "ffprobe" || cfg.Ingest.FFmpegBinary != "ffmpeg" {
		t.Fatalf("unexpected binary defaults: %q %q", cfg.Ingest.FFprobeBinary, cfg.Ingest.FFmpegBinary)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %q %q", cfg.Logging.Format, cfg.Logging.Level)
	}
	if cfg.DatabasePath() != filepath.Join(wantState, "catalog.db") {
		t.Fatalf("unexpected database path: %q", cfg.DatabasePath())
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.StateDir, cfg.Paths.ThumbnailDir, cfg.Paths.PreviewDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be a directory", dir)
		}
	}
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := strings.Join([]string{
		"[paths]",
		`state_dir = "` + filepath.Join(dir, "state") + `"`,
		"[ingest]",
		"workers = 4",
		"throttle_ms = 10",
		"[logging]",
		`format = "json"`,
		`level = "debug"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: exists=%v resolved=%q", exists, resolved)
	}
	if cfg.Ingest.Workers != 4 {
		t.Fatalf("expected workers override, got %d", cfg.Ingest.Workers)
	}
	if cfg.Ingest.ThrottleMillis != 10 {
		t.Fatalf("expected throttle override, got %d", cfg.Ingest.ThrottleMillis)
	}
	if cfg.Ingest.ThrottleEvery != 5 {
		t.Fatalf("expected throttle_every default, got %d", cfg.Ingest.ThrottleEvery)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging overrides: %q %q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"zero workers", func(c *config.Config) { c.Ingest.Workers = 0 }, "ingest.workers"},
		{"zero throttle cadence", func(c *config.Config) { c.Ingest.ThrottleEvery = 0 }, "ingest.throttle_every"},
		{"negative throttle", func(c *config.Config) { c.Ingest.ThrottleMillis = -1 }, "ingest.throttle_ms"},
		{"zero probe timeout", func(c *config.Config) { c.Ingest.ProbeTimeoutSeconds = 0 }, "ingest.probe_timeout_seconds"},
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"empty state dir", func(c *config.Config) { c.Paths.StateDir = "" }, "paths.state_dir"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Logging.Format = "console"
			cfg.Logging.Level = "info"
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestSampleConfigMentionsEverySection(t *testing.T) {
	sample := config.SampleConfig()
	for _, section := range []string{"[paths]", "[ingest]", "[logging]"} {
		if !strings.Contains(sample, section) {
			t.Fatalf("sample config missing %s", section)
		}
	}
}

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConsoleHandlerRendersSingleLine(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl))

	logger.Info("ingest complete", String("path", "/videos/a.mp4"), Int("total", 3))

	line := buf.String()
	if strings.Count(line, "\n") != 1 {
		t.Fatalf("expected one line, got %q", line)
	}
	for _, want := range []string{"INFO", "ingest complete", "path=/videos/a.mp4", "total=3"} {
		if !strings.Contains(line, want) {
			t.Fatalf("line %q missing %q", line, want)
		}
	}
}

func TestConsoleHandlerHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, lvl))

	logger.Info("quiet")
	logger.Warn("loud")

	if strings.Contains(buf.String(), "quiet") {
		t.Fatalf("info record should have been suppressed: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "loud") {
		t.Fatalf("warn record missing: %q", buf.String())
	}
}

func TestJSONHandlerFieldNames(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newJSONHandler(&buf, lvl))

	logger.Error("probe failed", String("path", "/videos/bad.avi"))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json output: %v", err)
	}
	if payload["level"] != "error" {
		t.Fatalf("unexpected level field: %v", payload["level"])
	}
	if payload["msg"] != "probe failed" {
		t.Fatalf("unexpected msg field: %v", payload["msg"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatal("expected ts field")
	}
}

func TestNewWritesLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "vidcat.log")

	logger, err := New(Options{Level: "info", Format: "console", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("log file missing record: %q", string(data))
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

package main

import (
	"testing"
)

func TestDepsReportsStubbedBinaries(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"deps"}, env.configPath)
	if err != nil {
		t.Fatalf("deps: %v", err)
	}
	requireContains(t, out, "ffprobe")
	requireContains(t, out, "ffmpeg")
	requireContains(t, out, "ok")
}

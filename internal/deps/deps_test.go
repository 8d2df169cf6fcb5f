package deps_test

import (
	"testing"

	"vidcat/internal/deps"
	"vidcat/internal/testsupport"
)

func TestCheckBinariesWithStubs(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries())

	statuses := deps.CheckBinaries(deps.Requirements(cfg))
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	for _, status := range statuses {
		if !status.Available {
			t.Errorf("%s should be available: %s", status.Name, status.Detail)
		}
	}
	if missing := deps.MissingRequired(statuses); len(missing) != 0 {
		t.Fatalf("unexpected missing: %v", missing)
	}
}

func TestCheckBinariesMissing(t *testing.T) {
	statuses := deps.CheckBinaries([]deps.Requirement{
		{Name: "ffprobe", Command: "definitely-not-a-real-binary-name"},
		{Name: "unset", Command: "   "},
	})
	if statuses[0].Available || statuses[1].Available {
		t.Fatalf("expected both unavailable: %+v", statuses)
	}
	if missing := deps.MissingRequired(statuses); len(missing) != 2 {
		t.Fatalf("expected 2 missing, got %v", missing)
	}
}

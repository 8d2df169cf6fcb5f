package facet_test

import (
	"reflect"
	"testing"

	"vidcat/internal/catalog"
	"vidcat/internal/facet"
)

var (
	recH264 = catalog.Record{Path: "/v/a.mp4", Name: "a.mp4", Tags: "a,b", Codec: "h264", Height: 1080}
	recHap  = catalog.Record{Path: "/v/b.mov", Name: "b.mov", Tags: "c", Codec: "hap", Height: 2200}
	recBare = catalog.Record{Path: "/v/c.mkv", Name: "c.mkv", Tags: "", Codec: "vp9", Height: 700}
)

func names(records []catalog.Record) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Name)
	}
	return out
}

func TestFilterAnd(t *testing.T) {
	spec := facet.NewSpec([]string{"a"}, nil, nil, false)
	got := facet.Filter([]catalog.Record{recH264, recHap}, spec)
	if !reflect.DeepEqual(names(got), []string{"a.mp4"}) {
		t.Fatalf("unexpected match: %v", names(got))
	}
}

func TestFilterAndRequiresEveryTerm(t *testing.T) {
	spec := facet.NewSpec([]string{"a", "hap"}, nil, nil, false)
	if got := facet.Filter([]catalog.Record{recH264, recHap}, spec); len(got) != 0 {
		t.Fatalf("no record carries both terms, got %v", names(got))
	}

	spec = facet.NewSpec([]string{"a", "h264", "1080p"}, nil, nil, false)
	got := facet.Filter([]catalog.Record{recH264, recHap}, spec)
	if !reflect.DeepEqual(names(got), []string{"a.mp4"}) {
		t.Fatalf("mixed tag/codec/class conjunction failed: %v", names(got))
	}
}

func TestFilterOr(t *testing.T) {
	spec := facet.NewSpec(nil, []string{"c", "hap"}, nil, false)
	got := facet.Filter([]catalog.Record{recH264, recHap}, spec)
	if !reflect.DeepEqual(names(got), []string{"b.mov"}) {
		t.Fatalf("unexpected match: %v", names(got))
	}
}

func TestFilterNot(t *testing.T) {
	spec := facet.NewSpec(nil, nil, []string{"hap"}, false)
	got := facet.Filter([]catalog.Record{recH264, recHap}, spec)
	if !reflect.DeepEqual(names(got), []string{"a.mp4"}) {
		t.Fatalf("unexpected match: %v", names(got))
	}
}

func TestFilterUntaggedOnly(t *testing.T) {
	spec := facet.NewSpec(nil, nil, nil, true)
	got := facet.Filter([]catalog.Record{recH264, recHap, recBare}, spec)
	if !reflect.DeepEqual(names(got), []string{"c.mkv"}) {
		t.Fatalf("unexpected match: %v", names(got))
	}
}

func TestFilterClausesCombineConjunctively(t *testing.T) {
	// OR admits both records; NOT then excludes the hap one.
	spec := facet.NewSpec(nil, []string{"a", "c"}, []string{"4k"}, false)
	got := facet.Filter([]catalog.Record{recH264, recHap}, spec)
	if !reflect.DeepEqual(names(got), []string{"a.mp4"}) {
		t.Fatalf("unexpected match: %v", names(got))
	}
}

func TestFilterEmptySpecMatchesAll(t *testing.T) {
	spec := facet.NewSpec(nil, nil, nil, false)
	got := facet.Filter([]catalog.Record{recH264, recHap, recBare}, spec)
	if len(got) != 3 {
		t.Fatalf("empty spec must match everything, got %v", names(got))
	}
}

func TestFilterEmptyInput(t *testing.T) {
	if got := facet.Filter(nil, facet.NewSpec([]string{"a"}, nil, nil, false)); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestNewSpecNormalizes(t *testing.T) {
	spec := facet.NewSpec([]string{" A ", "a", "", "B"}, nil, nil, false)
	if !reflect.DeepEqual(spec.And, []string{"a", "b"}) {
		t.Fatalf("unexpected normalized terms: %v", spec.And)
	}
}

func TestMatchResolutionClassTerm(t *testing.T) {
	spec := facet.NewSpec([]string{"4k"}, nil, nil, false)
	if !facet.Match(recHap, spec) {
		t.Fatal("2200-high record must match 4k")
	}
	if facet.Match(recH264, spec) {
		t.Fatal("1080-high record must not match 4k")
	}
}

func TestResolutionClassBoundaries(t *testing.T) {
	cases := map[int]string{
		2160: "4k",
		2159: "1080p",
		1080: "1080p",
		1079: "720p",
		720:  "720p",
		719:  "sd",
		100:  "sd",
		0:    "sd",
	}
	for height, want := range cases {
		if got := facet.ResolutionClass(height); got != want {
			t.Errorf("ResolutionClass(%d) = %q, want %q", height, got, want)
		}
	}
}

func TestBuildVocabulary(t *testing.T) {
	records := []catalog.Record{
		{Codec: "H264", Height: 1080, Tags: "Loop,demo"},
		{Codec: "hap", Height: 2200, Tags: "demo"},
		{Codec: "h264", Height: 400},
	}
	vocab := facet.BuildVocabulary(records)

	if !reflect.DeepEqual(vocab.Codecs, []string{"h264", "hap"}) {
		t.Fatalf("unexpected codecs: %v", vocab.Codecs)
	}
	if !reflect.DeepEqual(vocab.Classes, []string{"1080p", "4k", "sd"}) {
		t.Fatalf("unexpected classes: %v", vocab.Classes)
	}
	if !reflect.DeepEqual(vocab.Tags, []string{"demo", "loop"}) {
		t.Fatalf("unexpected tags: %v", vocab.Tags)
	}
}

func TestBuildVocabularyEmpty(t *testing.T) {
	vocab := facet.BuildVocabulary(nil)
	if vocab.Codecs != nil || vocab.Classes != nil || vocab.Tags != nil {
		t.Fatalf("expected empty vocabulary, got %+v", vocab)
	}
}

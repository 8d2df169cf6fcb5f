package facet

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"vidcat/internal/catalog"
)

// Vocabulary is the sidebar facet inventory derived from the full record set.
type Vocabulary struct {
	Codecs  []string
	Classes []string
	Tags    []string
}

// BuildVocabulary computes the distinct lowercased codecs, resolution classes,
// and user tags present in the record set, each sorted lexicographically.
// One pass over the records; the class list stays within the fixed domain.
func BuildVocabulary(records []catalog.Record) Vocabulary {
	codecs := make(map[string]struct{})
	classes := make(map[string]struct{})
	tags := make(map[string]struct{})

	for _, rec := range records {
		if codec := strings.ToLower(strings.TrimSpace(rec.Codec)); codec != "" {
			codecs[codec] = struct{}{}
		}
		classes[ResolutionClass(rec.Height)] = struct{}{}
		for _, tag := range rec.TagList() {
			tags[strings.ToLower(tag)] = struct{}{}
		}
	}

	collator := collate.New(language.English)
	return Vocabulary{
		Codecs:  sortedTerms(collator, codecs),
		Classes: sortedTerms(collator, classes),
		Tags:    sortedTerms(collator, tags),
	}
}

func sortedTerms(collator *collate.Collator, set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	terms := make([]string, 0, len(set))
	for term := range set {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		return collator.CompareString(terms[i], terms[j]) < 0
	})
	return terms
}

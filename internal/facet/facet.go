package facet

import (
	"strings"

	"vidcat/internal/catalog"
)

// Spec is a tri-mode boolean filter over facet terms (tags, codecs,
// resolution classes). Each clause is a deduplicated set of lowercase terms;
// an empty clause is vacuously satisfied. UntaggedOnly is an orthogonal
// pre-filter selecting records with no tags at all.
type Spec struct {
	And          []string
	Or           []string
	Not          []string
	UntaggedOnly bool
}

// NewSpec normalizes raw clause terms: trimmed, lowercased, deduplicated,
// empty terms dropped. Input order is preserved for display purposes even
// though matching is order-insensitive.
func NewSpec(and, or, not []string, untaggedOnly bool) Spec {
	return Spec{
		And:          normalizeTerms(and),
		Or:           normalizeTerms(or),
		Not:          normalizeTerms(not),
		UntaggedOnly: untaggedOnly,
	}
}

// IsEmpty reports whether the spec imposes no constraint at all.
func (s Spec) IsEmpty() bool {
	return len(s.And) == 0 && len(s.Or) == 0 && len(s.Not) == 0 && !s.UntaggedOnly
}

func normalizeTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}
	return out
}

// TermSet builds a record's matchable facet terms: each trimmed-lowercased
// tag, the lowercased codec, and the resolution class of its height.
func TermSet(rec catalog.Record) map[string]struct{} {
	terms := make(map[string]struct{}, 4)
	for _, tag := range rec.TagList() {
		terms[strings.ToLower(tag)] = struct{}{}
	}
	if codec := strings.ToLower(strings.TrimSpace(rec.Codec)); codec != "" {
		terms[codec] = struct{}{}
	}
	terms[ResolutionClass(rec.Height)] = struct{}{}
	return terms
}

// Match evaluates one record against the spec. All non-empty clauses must
// pass: AND requires every term, OR at least one, NOT none.
func Match(rec catalog.Record, spec Spec) bool {
	if spec.UntaggedOnly && strings.TrimSpace(rec.Tags) != "" {
		return false
	}

	terms := TermSet(rec)

	for _, required := range spec.And {
		if _, ok := terms[required]; !ok {
			return false
		}
	}

	if len(spec.Or) > 0 {
		hit := false
		for _, candidate := range spec.Or {
			if _, ok := terms[candidate]; ok {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	for _, excluded := range spec.Not {
		if _, ok := terms[excluded]; ok {
			return false
		}
	}

	return true
}

// Filter returns the matching subset in input order. Pure: no caching, no
// side effects; call again whenever the record set or spec changes.
func Filter(records []catalog.Record, spec Spec) []catalog.Record {
	if len(records) == 0 {
		return nil
	}
	matched := make([]catalog.Record, 0, len(records))
	for _, rec := range records {
		if Match(rec, spec) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// Package facet implements boolean facet filtering over catalog records.
//
// A record's matchable terms are its user tags, its codec, and the derived
// resolution class of its height. A Spec carries AND/OR/NOT term sets that
// combine conjunctively. Everything here is a pure function over a snapshot
// of the record set; there is no cache to invalidate.
package facet

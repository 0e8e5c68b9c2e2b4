// Package dictionary holds the curated set of known abbreviation forms and
// answers whole-token membership queries against it.
//
// Matching is period-insensitive: "Ph.D.", "PhD." and "PhD" all resolve to
// the same entry. Letter casing still discriminates, so "phd" never matches.
// The set is built once and never mutated afterwards, which makes a Dict
// safe for concurrent use without locking.
package dictionary

import (
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Dict is an immutable set of known abbreviations, keyed by their
// period-stripped form.
type Dict struct {
	trie *patricia.Trie
	size int
}

// New builds a Dict from canonical entries. Each entry is stored under its
// normalized (period-stripped) form; entries that normalize to the empty
// string are dropped. Duplicate normalized forms collapse into one entry.
func New(entries []string) *Dict {
	trie := patricia.NewTrie()
	size := 0
	for _, entry := range entries {
		norm := Normalize(entry)
		if norm == "" {
			continue
		}
		if trie.Insert(patricia.Prefix(norm), true) {
			size++
		}
	}
	return &Dict{trie: trie, size: size}
}

// Default returns a Dict built from the builtin entry set.
func Default() *Dict {
	return New(DefaultEntries())
}

// Normalize strips every period from s. This is the only transformation
// applied before comparison; it is never reflected in emitted results.
func Normalize(s string) string {
	return strings.ReplaceAll(s, ".", "")
}

// Match reports whether token, with its periods removed, equals any entry.
// The comparison is whole-token and case-sensitive. Tokens that normalize
// to the empty string (e.g. "...") never match.
func (d *Dict) Match(token string) bool {
	norm := Normalize(token)
	if norm == "" {
		return false
	}
	return d.trie.Get(patricia.Prefix(norm)) != nil
}

// Len returns the number of distinct normalized entries.
func (d *Dict) Len() int {
	return d.size
}

// DefaultEntries returns the builtin canonical forms. Entries whose
// normalized form collides with a common standalone word (e.g. "no.", "fig.")
// are deliberately absent, since matching is whole-token.
func DefaultEntries() []string {
	return []string{
		// Titles and honorifics.
		"Mr.", "Mrs.", "Ms.", "Dr.", "Prof.", "Rev.", "Hon.", "Fr.", "Sr.", "Jr.",
		// Military and civic ranks.
		"Gen.", "Col.", "Maj.", "Capt.", "Lt.", "Sgt.", "Cpl.", "Gov.", "Sen.", "Rep.",
		// Academic degrees.
		"Ph.D.", "M.D.", "B.A.", "M.A.", "B.Sc.", "M.Sc.", "M.B.A.", "D.D.S.", "J.D.", "Ed.D.",
		// Latin and editorial.
		"etc.", "e.g.", "i.e.", "vs.", "cf.", "ibid.", "viz.", "approx.", "dept.", "vol.", "pp.",
		// Organizations.
		"Inc.", "Ltd.", "Corp.", "Co.", "Bros.",
		// Places.
		"St.", "Ave.", "Blvd.", "Rd.", "Mt.", "Ft.",
		// Common dotted initialisms.
		"U.S.", "U.K.", "U.N.", "E.U.", "D.C.", "a.m.", "p.m.",
	}
}

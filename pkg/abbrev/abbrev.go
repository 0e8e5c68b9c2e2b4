// Package abbrev locates abbreviations in raw text so that downstream
// sentence segmentation can keep abbreviation-internal periods from being
// misread as sentence boundaries.
//
// Two classes of match are reported: known abbreviations, which appear in
// a curated dictionary after period normalization, and unknown ones, which
// match a structural heuristic for capitalization-patterned tokens such as
// "NASA" or "A.B.C.". Results carry exact rune-offset spans into the
// source text; the emitted text is always a verbatim substring, never a
// normalized form.
//
// Detection is a pure function of the input and the dictionary. A Detector
// holds no mutable state, so one instance may serve any number of
// concurrent Detect calls.
package abbrev

import "github.com/preproc-tools/abbrevserve/pkg/dictionary"

// Abbreviation is a detected abbreviation with its half-open rune span
// [Start, End) into the original text. Text always equals the source
// substring covered by the span.
type Abbreviation struct {
	Text  string
	Start int
	End   int
}

// Detector scans text for abbreviations against a fixed dictionary.
type Detector struct {
	dict *dictionary.Dict
}

// NewDetector returns a Detector backed by dict. A nil dict falls back to
// the builtin dictionary.
func NewDetector(dict *dictionary.Dict) *Detector {
	if dict == nil {
		dict = dictionary.Default()
	}
	return &Detector{dict: dict}
}

// Detect scans text and returns the known and unknown abbreviations found,
// each in document order. The two sequences are disjoint and their spans
// never overlap. Empty input yields two empty sequences.
//
// Classification of a token consults at most the one token following it,
// so the whole scan is a single left-to-right pass.
func (d *Detector) Detect(text string) (known, unknown []Abbreviation) {
	scanner := NewScanner(text)
	cur, ok := scanner.Next()
	for ok {
		next, more := scanner.Next()
		var lookahead *Token
		if more {
			lookahead = &next
		}
		switch kind, abbr := d.classify(cur, lookahead); kind {
		case Known:
			known = append(known, abbr)
		case Unknown:
			unknown = append(unknown, abbr)
		}
		cur, ok = next, more
	}
	return known, unknown
}

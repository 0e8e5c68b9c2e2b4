// Package segment splits document text into sentences and ingestion chunks.
//
// Sentence boundaries are terminal punctuation followed by whitespace or end
// of input. Every abbreviation span reported by the detector is treated as
// an exclusion zone: a period inside such a span never closes a sentence,
// which is what keeps "Prof. John" inside one sentence.
package segment

import (
	"strings"
	"unicode"

	"github.com/preproc-tools/abbrevserve/pkg/abbrev"
)

// Span is a piece of the source text with its half-open rune bounds.
type Span struct {
	Text  string
	Start int
	End   int
}

// Sentences splits text into sentence spans using det to mask abbreviation
// periods. Leading and trailing whitespace is excluded from each span.
// Empty input returns nil.
func Sentences(text string, det *abbrev.Detector) []Span {
	if text == "" {
		return nil
	}
	known, unknown := det.Detect(text)
	excl := mergeSpans(known, unknown)
	runes := []rune(text)

	var sentences []Span
	start := -1 // rune index of the current sentence start, -1 between sentences

	i := 0
	for i < len(runes) {
		r := runes[i]
		if start < 0 {
			if unicode.IsSpace(r) {
				i++
				continue
			}
			start = i
		}
		if isTerminal(r) && !inside(excl, i) {
			// Consume the whole punctuation cluster ("?!", "...").
			j := i + 1
			for j < len(runes) && isTerminal(runes[j]) && !inside(excl, j) {
				j++
			}
			if j >= len(runes) || unicode.IsSpace(runes[j]) {
				sentences = append(sentences, Span{Text: string(runes[start:j]), Start: start, End: j})
				start = -1
			}
			i = j
			continue
		}
		i++
	}
	if start >= 0 {
		sentences = append(sentences, Span{Text: string(runes[start:]), Start: start, End: len(runes)})
	}
	return sentences
}

// Chunks groups sentences into passages of roughly wordsPerChunk words.
// sentOverlap whole sentences from the end of each chunk are re-included at
// the start of the next one. wordsPerChunk is a target, not a hard cap: a
// single oversized sentence is emitted as its own chunk. Returns nil for
// empty text or wordsPerChunk <= 0.
func Chunks(text string, det *abbrev.Detector, wordsPerChunk, sentOverlap int) []Span {
	if wordsPerChunk <= 0 {
		return nil
	}
	sentences := Sentences(text, det)
	if len(sentences) == 0 {
		return nil
	}
	if sentOverlap < 0 {
		sentOverlap = 0
	}
	runes := []rune(text)

	var chunks []Span
	groupStart := 0
	for groupStart < len(sentences) {
		groupEnd := groupStart
		words := 0
		for groupEnd < len(sentences) {
			n := len(strings.Fields(sentences[groupEnd].Text))
			if words > 0 && words+n > wordsPerChunk {
				break
			}
			words += n
			groupEnd++
		}
		if groupEnd == groupStart {
			groupEnd = groupStart + 1
		}

		startRune := sentences[groupStart].Start
		endRune := sentences[groupEnd-1].End
		chunks = append(chunks, Span{
			Text:  string(runes[startRune:endRune]),
			Start: startRune,
			End:   endRune,
		})
		if groupEnd >= len(sentences) {
			break
		}

		// Overlap re-includes whole trailing sentences, but the window must
		// always advance by at least one sentence.
		nextStart := groupEnd - sentOverlap
		if nextStart <= groupStart {
			nextStart = groupStart + 1
		}
		groupStart = nextStart
	}
	return chunks
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// mergeSpans interleaves the two already-sorted sequences into one sorted
// slice of exclusion spans.
func mergeSpans(known, unknown []abbrev.Abbreviation) []abbrev.Abbreviation {
	merged := make([]abbrev.Abbreviation, 0, len(known)+len(unknown))
	i, j := 0, 0
	for i < len(known) && j < len(unknown) {
		if known[i].Start < unknown[j].Start {
			merged = append(merged, known[i])
			i++
		} else {
			merged = append(merged, unknown[j])
			j++
		}
	}
	merged = append(merged, known[i:]...)
	merged = append(merged, unknown[j:]...)
	return merged
}

// inside reports whether rune index pos falls within any span.
func inside(spans []abbrev.Abbreviation, pos int) bool {
	for _, s := range spans {
		if s.Start > pos {
			return false
		}
		if pos < s.End {
			return true
		}
	}
	return false
}

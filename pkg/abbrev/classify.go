package abbrev

import (
	"unicode"
	"unicode/utf8"
)

// Kind tags the outcome of classifying a single token. The dictionary check
// runs first; a token can never be both Known and Unknown.
type Kind int

const (
	None    Kind = iota // not an abbreviation
	Known               // matched the dictionary
	Unknown             // matched the structural heuristic
)

// classify decides whether tok is an abbreviation. next is the following
// token, or nil when tok is the last one; it is consulted only to resolve
// trailing-period ownership. Classification never looks further ahead.
func (d *Detector) classify(tok Token, next *Token) (Kind, Abbreviation) {
	if d.dict.Match(tok.Text) {
		return Known, Abbreviation{Text: tok.Text, Start: tok.Start, End: tok.End}
	}

	first, last, count := letterBounds(tok.Text)
	if count < 2 {
		return None, Abbreviation{}
	}
	// A token glued to neighboring text ("blah.ABC") fails here naturally:
	// its first or last letter belongs to the neighbor and is lowercase.
	if !unicode.IsUpper(first) || !unicode.IsUpper(last) {
		return None, Abbreviation{}
	}

	trailing := trailingPeriods(tok.Text)
	if trailing == 0 {
		return Unknown, Abbreviation{Text: tok.Text, Start: tok.Start, End: tok.End}
	}

	// The trailing period run collapses to at most one period. It stays with
	// the abbreviation at end of input or when the next token starts with
	// anything but an uppercase letter; an uppercase next token marks it as
	// a sentence terminator instead.
	base := tok.Text[:len(tok.Text)-trailing]
	end := tok.End - trailing
	if next == nil || !startsUpper(next.Text) {
		return Unknown, Abbreviation{Text: base + ".", Start: tok.Start, End: end + 1}
	}
	return Unknown, Abbreviation{Text: base, Start: tok.Start, End: end}
}

// letterBounds returns the first and last alphabetic runes of s and how
// many alphabetic runes s contains.
func letterBounds(s string) (first, last rune, count int) {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if count == 0 {
			first = r
		}
		last = r
		count++
	}
	return first, last, count
}

// trailingPeriods counts consecutive '.' runes at the end of s.
func trailingPeriods(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '.'; i-- {
		n++
	}
	return n
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

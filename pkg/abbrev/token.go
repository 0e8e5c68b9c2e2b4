package abbrev

import (
	"unicode"
	"unicode/utf8"
)

// Token is a whitespace-delimited run of characters with its exact rune
// bounds in the source text. Tokens never contain whitespace and are never
// empty.
type Token struct {
	Text  string
	Start int // rune offset, inclusive
	End   int // rune offset, exclusive
}

// Scanner walks a string left to right and yields whitespace-delimited
// tokens one at a time. It is single-pass and not restartable.
//
// Offsets are rune indices, not byte indices, so spans stay correct for
// multi-byte input. Any rune for which unicode.IsSpace holds is a separator.
type Scanner struct {
	src  string
	pos  int // byte offset
	rpos int // rune offset
}

// NewScanner returns a Scanner positioned at the start of src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Next returns the next token and true, or the zero Token and false once
// the input is exhausted.
func (s *Scanner) Next() (Token, bool) {
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		s.pos += size
		s.rpos++
	}
	if s.pos >= len(s.src) {
		return Token{}, false
	}

	startByte, startRune := s.pos, s.rpos
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if unicode.IsSpace(r) {
			break
		}
		s.pos += size
		s.rpos++
	}
	return Token{
		Text:  s.src[startByte:s.pos],
		Start: startRune,
		End:   s.rpos,
	}, true
}

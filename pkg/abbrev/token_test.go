package abbrev

import (
	"reflect"
	"testing"
)

func collect(src string) []Token {
	var tokens []Token
	s := NewScanner(src)
	for {
		tok, ok := s.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func TestScannerSpans(t *testing.T) {
	cases := []struct {
		src  string
		want []Token
	}{
		{"", nil},
		{"   \t\n", nil},
		{"one", []Token{{"one", 0, 3}}},
		{"one two", []Token{{"one", 0, 3}, {"two", 4, 7}}},
		{"  lead trail  ", []Token{{"lead", 2, 6}, {"trail", 7, 12}}},
		{"a\tb\nc", []Token{{"a", 0, 1}, {"b", 2, 3}, {"c", 4, 5}}},
		// Non-breaking space (U+00A0) is a separator too.
		{"x y", []Token{{"x", 0, 1}, {"y", 2, 3}}},
	}
	for _, tc := range cases {
		if got := collect(tc.src); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("tokens(%q) = %+v, want %+v", tc.src, got, tc.want)
		}
	}
}

func TestScannerRuneOffsets(t *testing.T) {
	src := "café über naïve"
	got := collect(src)
	want := []Token{
		{"café", 0, 4},
		{"über", 5, 9},
		{"naïve", 10, 15},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokens(%q) = %+v, want %+v", src, got, want)
	}

	runes := []rune(src)
	for _, tok := range got {
		if string(runes[tok.Start:tok.End]) != tok.Text {
			t.Errorf("span [%d:%d) does not cover %q", tok.Start, tok.End, tok.Text)
		}
	}
}

func TestScannerExhaustion(t *testing.T) {
	s := NewScanner("only")
	if _, ok := s.Next(); !ok {
		t.Fatal("expected one token")
	}
	for i := 0; i < 3; i++ {
		if tok, ok := s.Next(); ok {
			t.Fatalf("expected exhausted scanner, got %+v", tok)
		}
	}
}

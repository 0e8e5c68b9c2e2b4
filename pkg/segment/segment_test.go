package segment

import (
	"testing"

	"github.com/preproc-tools/abbrevserve/pkg/abbrev"
	"github.com/preproc-tools/abbrevserve/pkg/dictionary"
)

func newDetector() *abbrev.Detector {
	return abbrev.NewDetector(dictionary.Default())
}

func texts(spans []Span) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.Text
	}
	return out
}

func assertTexts(t *testing.T, got []Span, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d spans %q, want %d %q", len(got), texts(got), len(want), want)
	}
	for i := range want {
		if got[i].Text != want[i] {
			t.Errorf("span[%d] = %q, want %q", i, got[i].Text, want[i])
		}
	}
}

func TestSentencesBasic(t *testing.T) {
	det := newDetector()
	got := Sentences("One sentence here. Another one! A third?", det)
	assertTexts(t, got, []string{"One sentence here.", "Another one!", "A third?"})
}

func TestSentencesAbbreviationsDoNotSplit(t *testing.T) {
	det := newDetector()

	got := Sentences("Prof. John has a Ph.D. in computer science.", det)
	assertTexts(t, got, []string{"Prof. John has a Ph.D. in computer science."})

	// A heuristic match mid-sentence keeps its period masked too.
	got = Sentences("The A.B.C. method works well. Try it.", det)
	assertTexts(t, got, []string{"The A.B.C. method works well.", "Try it."})
}

func TestSentencesAbbreviationAtSentenceEnd(t *testing.T) {
	det := newDetector()
	// The period after ABC belongs to the sentence (next token is uppercase),
	// so the break survives.
	got := Sentences("We studied ABC. Then we stopped.", det)
	assertTexts(t, got, []string{"We studied ABC.", "Then we stopped."})
}

func TestSentencesSpansIndexSource(t *testing.T) {
	det := newDetector()
	text := "Café très bon. Encore une fois."
	runes := []rune(text)
	for _, s := range Sentences(text, det) {
		if string(runes[s.Start:s.End]) != s.Text {
			t.Errorf("span [%d:%d) does not cover %q", s.Start, s.End, s.Text)
		}
	}
}

func TestSentencesEmptyAndUnterminated(t *testing.T) {
	det := newDetector()
	if got := Sentences("", det); got != nil {
		t.Errorf("Sentences(\"\") = %v, want nil", got)
	}
	got := Sentences("no terminal punctuation at all", det)
	assertTexts(t, got, []string{"no terminal punctuation at all"})
}

func TestChunksGrouping(t *testing.T) {
	det := newDetector()
	text := "One two three. Four five six. Seven eight nine. Ten eleven twelve."

	got := Chunks(text, det, 6, 0)
	assertTexts(t, got, []string{
		"One two three. Four five six.",
		"Seven eight nine. Ten eleven twelve.",
	})
}

func TestChunksOverlap(t *testing.T) {
	det := newDetector()
	text := "One two three. Four five six. Seven eight nine."

	got := Chunks(text, det, 6, 1)
	assertTexts(t, got, []string{
		"One two three. Four five six.",
		"Four five six. Seven eight nine.",
	})
}

func TestChunksOversizedSentence(t *testing.T) {
	det := newDetector()
	text := "This single sentence has far more words than the budget allows here."
	got := Chunks(text, det, 3, 0)
	assertTexts(t, got, []string{text})
}

func TestChunksInvalidInput(t *testing.T) {
	det := newDetector()
	if got := Chunks("some text.", det, 0, 1); got != nil {
		t.Errorf("Chunks with zero budget = %v, want nil", got)
	}
	if got := Chunks("", det, 10, 1); got != nil {
		t.Errorf("Chunks(\"\") = %v, want nil", got)
	}
}

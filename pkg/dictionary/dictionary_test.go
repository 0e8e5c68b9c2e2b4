package dictionary

import "testing"

func TestMatchPeriodInsensitive(t *testing.T) {
	d := New([]string{"Ph.D.", "Prof.", "etc."})

	cases := []struct {
		token string
		want  bool
	}{
		{"Ph.D.", true},
		{"PhD.", true},
		{"PhD", true},
		{"P.h.D", true},
		{"phd", false},  // casing discriminates
		{"PhDs", false}, // whole-token only
		{"Prof", true},
		{"Prof.", true},
		{"Professor", false},
		{"etc", true},
		{"", false},
		{"...", false},
	}
	for _, tc := range cases {
		if got := d.Match(tc.token); got != tc.want {
			t.Errorf("Match(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestNewDropsEmptyAndDuplicates(t *testing.T) {
	d := New([]string{"...", "", "PhD", "Ph.D.", "P.h.D."})
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}
	if !d.Match("PhD") {
		t.Error("Match(PhD) = false, want true")
	}
	if d.Match("...") {
		t.Error("Match(...) = true, want false")
	}
}

func TestDefaultEntries(t *testing.T) {
	d := Default()
	if d.Len() == 0 {
		t.Fatal("default dictionary is empty")
	}
	for _, token := range []string{"Prof.", "PhD", "Dr.", "Mr.", "etc.", "U.S."} {
		if !d.Match(token) {
			t.Errorf("Match(%q) = false, want true", token)
		}
	}
	for _, token := range []string{"hello", "NASA", "ABC"} {
		if d.Match(token) {
			t.Errorf("Match(%q) = true, want false", token)
		}
	}
}

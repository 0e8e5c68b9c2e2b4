package dictionary

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abbrev.txt")
	content := "# custom entries\nSARL.\n\n  GmbH  \n# trailing comment\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := ReadEntries(path)
	if err != nil {
		t.Fatalf("ReadEntries: %v", err)
	}
	want := []string{"SARL.", "GmbH"}
	if len(entries) != len(want) {
		t.Fatalf("entries = %v, want %v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i], want[i])
		}
	}
}

func TestLoadMergesOverBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abbrev.txt")
	if err := os.WriteFile(path, []byte("Xyz.\n"), 0644); err != nil {
		t.Fatal(err)
	}

	d := Load(path)
	if !d.Match("Xyz.") {
		t.Error("file entry not loaded")
	}
	if !d.Match("Prof.") {
		t.Error("builtin entry lost after merge")
	}
}

func TestLoadFallsBackOnError(t *testing.T) {
	d := Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if d.Len() != Default().Len() {
		t.Errorf("fallback dictionary has %d entries, want %d", d.Len(), Default().Len())
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if d := Load(""); !d.Match("etc.") {
		t.Error("empty path should yield the builtin dictionary")
	}
}

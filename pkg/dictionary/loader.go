package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// ReadEntries parses a plain-text entry file: one canonical form per line,
// blank lines and lines starting with '#' ignored.
func ReadEntries(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary file: %w", err)
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary file: %w", err)
	}
	return entries, nil
}

// Load builds a Dict from the builtin entries merged with the entries in
// the file at path. An empty path returns the builtin set. Any read failure
// falls back to the builtin set with a warning; loading never fails hard.
func Load(path string) *Dict {
	if path == "" {
		return Default()
	}
	extras, err := ReadEntries(path)
	if err != nil {
		log.Warnf("Failed to load dictionary from %s: %v. Using builtin entries...", path, err)
		return Default()
	}
	log.Debugf("Loaded %d dictionary entries from %s", len(extras), path)
	return New(append(DefaultEntries(), extras...))
}

// Package cli handles cmd line input for DBG and testing the detection engine
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/preproc-tools/abbrevserve/pkg/abbrev"
	"github.com/preproc-tools/abbrevserve/pkg/segment"
)

// InputHandler reads text lines from stdin and prints the detected
// abbreviations and sentence boundaries for each one.
type InputHandler struct {
	det        *abbrev.Detector
	out        *log.Logger
	maxTextLen int
	showSpans  bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(det *abbrev.Detector, maxTextLen int, showSpans bool) *InputHandler {
	return &InputHandler{
		det:        det,
		out:        newResultLogger(),
		maxTextLen: maxTextLen,
		showSpans:  showSpans,
	}
}

// newResultLogger builds the plain logger for result lines. Results go to
// stderr like all other output; stdout belongs to the msgpack wire in
// server mode and stays untouched here for consistency.
func newResultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:     log.GetLevel(),
		Formatter: log.TextFormatter,
	})
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("AbbrevServe CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a passage and press Enter to scan it (Ctrl+C to exit):")

	for {
		log.Print("> ")
		text, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		text = strings.TrimRight(text, "\r\n")
		if text == "" {
			continue
		}
		h.handleInput(text)
	}
}

// handleInput scans a single passage and prints the results.
func (h *InputHandler) handleInput(text string) {
	if h.maxTextLen > 0 && len(text) > h.maxTextLen {
		log.Errorf("Text too long: %d bytes", len(text))
		return
	}

	start := time.Now()
	known, unknown := h.det.Detect(text)
	sentences := segment.Sentences(text, h.det)
	elapsed := time.Since(start)

	log.Debugf("Took [ %v ] for %d bytes", elapsed, len(text))

	if len(known) == 0 && len(unknown) == 0 {
		h.out.Printf("No abbreviations found (%d sentences)", len(sentences))
		return
	}

	h.out.Printf("Found %d known, %d unknown (%d sentences):", len(known), len(unknown), len(sentences))
	h.printAbbrevs("known", known)
	h.printAbbrevs("unknown", unknown)
}

func (h *InputHandler) printAbbrevs(label string, abbrevs []abbrev.Abbreviation) {
	for i, a := range abbrevs {
		colored := fmt.Sprintf("\033[38;5;75m%s\033[0m", a.Text)
		if h.showSpans {
			h.out.Printf("%2d. [%s] %-30s (%d:%d)", i+1, label, colored, a.Start, a.End)
		} else {
			h.out.Printf("%2d. [%s] %s", i+1, label, colored)
		}
	}
}

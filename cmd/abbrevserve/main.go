/*
Package main implements the abbreviation detection server and CLI application.

AbbrevServe locates abbreviations in document text so that sentence
segmentation does not mistake abbreviation-internal periods for sentence
boundaries when chunking documents for ingestion. Known forms come from a
curated dictionary matched after period normalization; unrecognized tokens
are matched by a capitalization heuristic ("NASA", "A.B.C.").

It can operate as a MessagePack IPC server for integration with ingestion
pipelines, or as a CLI application for testing and debugging.

# Usage

Start the server with default settings:

	abbrevserve

Use a custom dictionary file and enable debug mode:

	abbrevserve -dict /path/to/entries.txt -d

Run in CLI mode for interactive testing:

	abbrevserve -c -spans

# Configuration

Runtime configuration is managed through a TOML file:

	[server]
	max_text_len = 1048576

	[dict]
	path = ""

	[segment]
	chunk_word_length = 100
	sent_overlap = 1

	[service]
	base_url = "http://localhost:8000"
	timeout_secs = 60

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests carry
an id, an op and the text to scan:

	{"id": "req1", "op": "detect", "text": "Prof. John has a Ph.D."}

Responses echo the id and carry the known and unknown abbreviation spans:

	{"id": "req1", "known": [{"text": "Prof.", "s": 0, "e": 5}, ...], "unknown": [], "t": 12}

The ops "sentences" and "chunks" expose the downstream segmentation that
consumes the detected spans as exclusion zones.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/preproc-tools/abbrevserve/internal/cli"
	"github.com/preproc-tools/abbrevserve/pkg/abbrev"
	"github.com/preproc-tools/abbrevserve/pkg/config"
	"github.com/preproc-tools/abbrevserve/pkg/dictionary"
	"github.com/preproc-tools/abbrevserve/pkg/server"
)

const (
	Version = "1.2.0"
	AppName = "abbrevserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the dictionary, detector and serving mode together. It does
// not implement any detection logic itself.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	configPath := flag.String("config", "", "Path to config.toml (default: ~/.config/abbrevserve/config.toml)")
	dictPath := flag.String("dict", "", "Extra dictionary entry file, one canonical form per line")
	showSpans := flag.Bool("spans", false, "CLI mode: print rune offsets next to each match")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath := config.LoadConfigWithPriority(*configPath)
	if activePath != "" {
		log.Debugf("Using config file: (%s)", activePath)
	}

	entryFile := *dictPath
	if entryFile == "" {
		entryFile = cfg.Dict.Path
	}
	dict := dictionary.Load(entryFile)
	log.Debugf("Dictionary ready: %d entries", dict.Len())

	det := abbrev.NewDetector(dict)

	if *cliMode {
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(det, cfg.Server.MaxTextLen, *showSpans)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	showStartupInfo(dict.Len())

	srv := server.NewServer(det, dict, cfg, os.Stdin, os.Stdout)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ AbbrevServe ] Abbreviation detection for sentence segmentation.")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(entries int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("dictionary entries: [ %d ]", entries)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}

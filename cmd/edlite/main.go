// Package main is the entry point for the edlite editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dshills/edlite/internal/app"
	"github.com/dshills/edlite/internal/dispatcher"
	"github.com/dshills/edlite/internal/renderer/backend"
	"github.com/dshills/edlite/internal/renderer/highlight"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	application.SetDispatcher(dispatcher.New(dispatcher.Config{
		Session:   application.Session(),
		Clipboard: app.NewSystemClipboard(),
		Logger:    application.Logger(),
	}))

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	application.SetScreen(term)

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Stop()
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.Language, "lang", "", "Override syntax language (see -langs)")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file (logging is off without it)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	var showLangs bool
	flag.BoolVar(&showLangs, "langs", false, "List supported languages")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "edlite - a minimal terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: edlite [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  edlite                      Open with empty buffer\n")
		fmt.Fprintf(os.Stderr, "  edlite notes.txt            Open a file\n")
		fmt.Fprintf(os.Stderr, "  edlite -lang python build   Open with forced highlighting\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("edlite %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	if showLangs {
		fmt.Println(strings.Join(highlight.Supported(), "\n"))
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		opts.FilePath = flag.Arg(0)
	}

	return opts
}

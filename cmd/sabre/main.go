// Package main is the entry point for the Sabre editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/dshills/sabre/internal/app"
	"github.com/dshills/sabre/internal/clipboard"
	"github.com/dshills/sabre/internal/config"
	"github.com/dshills/sabre/internal/renderer"
	"github.com/dshills/sabre/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type flags struct {
	configPath string
	logLevel   string
	logFile    string
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	opts, err := loadOptions(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, closeLog, err := app.OpenLogger(opts.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	content, err := readFile(f.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	watcher, err := app.NewFileWatcher(log)
	if err != nil {
		log.WithError(err).Warn("file watching disabled")
		watcher = nil
	} else {
		defer watcher.Close()
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ed, err := app.New(app.Options{
		Config:    opts,
		Logger:    log,
		Clipboard: newClipboard(opts.Editor.Clipboard, log),
		Save:      writeFile(log),
		Watcher:   watcher,
		Quit:      cancel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	if f.file != "" {
		ed.Open(f.file, content)
	}

	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer term.Shutdown()

	if watcher != nil {
		watcher.OnChange(func(string, bool) {
			term.PostEvent(backend.Event{Type: backend.EventInterrupt})
		})
	}

	ropts := renderer.OptionsFromConfig(opts.Editor)
	ropts.Log = log
	s := &session{
		be:  term,
		ed:  ed,
		r:   renderer.New(ropts),
		log: log.WithField("component", "session"),
	}
	if err := s.run(ctx); err != nil {
		log.WithError(err).Error("session ended")
		return 1
	}
	return 0
}

func parseFlags() flags {
	var f flags
	var showVersion bool

	flag.StringVar(&f.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&f.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Sabre - a small terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: sabre [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nSettings can also be set with %s* environment variables.\n", config.DefaultEnvPrefix)
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Sabre %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	f.file = flag.Arg(0)
	return f
}

// loadOptions reads the config file, then applies environment overrides
// and finally command line flags.
func loadOptions(f flags) (config.Options, error) {
	opts, err := config.Load(f.configPath)
	if err != nil {
		return opts, err
	}
	if err := opts.ApplyEnv(config.DefaultEnvPrefix); err != nil {
		return opts, err
	}
	if f.logLevel != "" {
		opts.Logging.Level = f.logLevel
	}
	if f.logFile != "" {
		opts.Logging.File = f.logFile
	}
	return opts, opts.Validate()
}

// readFile returns the content of path. A missing file reads as empty so
// it can be created on save.
func readFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func newClipboard(kind string, log logrus.FieldLogger) clipboard.Clipboard {
	if kind == config.ClipboardSystem {
		if sys := clipboard.NewSystem(); sys.Available() {
			return sys
		}
		log.Warn("system clipboard unavailable, using memory clipboard")
	}
	return clipboard.NewMemory()
}

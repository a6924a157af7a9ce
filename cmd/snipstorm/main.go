// Package main is the entry point for the Snipstorm demo editor.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/dshills/snipstorm/internal/config"
	"github.com/dshills/snipstorm/internal/session"
	"github.com/dshills/snipstorm/internal/snippet/dispatch"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Options holds command-line settings.
type Options struct {
	ConfigPath string
	Mode       string
	LogPath    string
	LogLevel   string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	log, logClose, err := newLogger(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log: %v\n", err)
		return 1
	}
	defer logClose()

	table := dispatch.NewTable()
	markers := defaultMarkers()

	file, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if file != nil {
		markers = file.ResolveMarkers(markers)
		if err := config.Apply(file, table, opts.Mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		log.Info().Str("path", opts.ConfigPath).Int("snippets", len(file.Snippets)).Msg("config loaded")
	} else {
		registerBuiltins(table)
		log.Info().Msg("no config file, using built-in snippets")
	}

	sess := session.New(
		session.WithMode(opts.Mode),
		session.WithTable(table),
		session.WithMarkers(markers),
	)
	log.Info().Stringer("session", sess.ID()).Str("mode", opts.Mode).Msg("session started")

	// Live-reload snippet definitions while the editor runs. Marker
	// overrides need a restart; the session's splitter keeps the markers
	// it started with.
	if opts.ConfigPath != "" {
		watcher, werr := config.NewWatcher(opts.ConfigPath, func(f *config.File) {
			table.Clear()
			if aerr := config.Apply(f, table, opts.Mode); aerr != nil {
				log.Error().Err(aerr).Msg("config apply failed")
			}
		}, config.WithLogger(log))
		if werr != nil {
			log.Warn().Err(werr).Msg("config watching disabled")
		} else {
			defer watcher.Close()
		}
	}

	ed, err := newEditor(sess, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	defer ed.Close()

	if err := ed.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(opts Options) (zerolog.Logger, func(), error) {
	if opts.LogPath == "" {
		return zerolog.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, err
	}

	level, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var w io.Writer = f
	log := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return log, func() { _ = f.Close() }, nil
}

func parseFlags() Options {
	var opts Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to snippet configuration file (.yaml or .toml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to snippet configuration file (shorthand)")
	flag.StringVar(&opts.Mode, "mode", "text", "Editing mode for snippet dispatch")
	flag.StringVar(&opts.Mode, "m", "text", "Editing mode for snippet dispatch (shorthand)")
	flag.StringVar(&opts.LogPath, "log", "", "Write logs to this file")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Snipstorm - conditional snippet expansion demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: snipstorm [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  type a trigger word then Space to expand it\n")
		fmt.Fprintf(os.Stderr, "  Tab / Shift-Tab   next / previous field\n")
		fmt.Fprintf(os.Stderr, "  Esc               cancel the active snippet\n")
		fmt.Fprintf(os.Stderr, "  Ctrl-Q            quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Snipstorm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}

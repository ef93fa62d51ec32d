// Package main is the entry point for labeldemo, a terminal viewer for
// formatted labels.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/dshills/textlayout/internal/config"
	"github.com/dshills/textlayout/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var version = "dev"

type options struct {
	configPath string
	text       string
	align      string
	width      int
	height     int
	specifier  string
	logPath    string
	logLevel   string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := newFlagSet()
	opts, err := parseFlags(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	cfg, err := loadConfig(fs, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := newLogger(opts.logPath, opts.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	view, err := newLabelView(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}

	// Restore the terminal before reporting errors.
	err = view.run(term)
	term.Shutdown()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("labeldemo", flag.ContinueOnError)
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var opts options
	var showVersion bool

	fs.StringVarP(&opts.configPath, "config", "c", "", "Path to a TOML label file")
	fs.StringVarP(&opts.text, "text", "t", "", "Label text (overrides the file)")
	fs.StringVarP(&opts.align, "align", "a", "", "Alignment: left, right, centered or justified")
	fs.IntVarP(&opts.width, "width", "W", 0, "Layout width in columns")
	fs.IntVarP(&opts.height, "height", "H", 0, "Layout height in rows")
	fs.StringVar(&opts.specifier, "specifier", "", "Hotkey specifier rune (empty disables hotkeys)")
	fs.StringVar(&opts.logPath, "log", "", "Write debug logs to this file")
	fs.StringVar(&opts.logLevel, "log-level", "debug", "Log level (debug, info, warn, error)")
	fs.BoolVarP(&showVersion, "version", "v", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "labeldemo - lay out and draw a label in the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: labeldemo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: Tab cycles alignment, arrows resize, Esc quits ([keys] in the label file rebinds Tab and Esc).\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if showVersion {
		fmt.Printf("labeldemo %s\n", version)
		return opts, flag.ErrHelp
	}
	return opts, nil
}

// loadConfig reads the label file, if any, and applies the flags the user
// set on top of it.
func loadConfig(fs *flag.FlagSet, opts options) (config.LabelConfig, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}

	if fs.Changed("text") {
		cfg.Text = opts.text
	}
	if fs.Changed("align") {
		cfg.Align = opts.align
	}
	if fs.Changed("width") {
		cfg.Width = opts.width
	}
	if fs.Changed("height") {
		cfg.Height = opts.height
	}
	if fs.Changed("specifier") {
		cfg.HotKeySpecifier = opts.specifier
	}
	return cfg, cfg.Validate()
}

func newLogger(path, level string) (*slog.Logger, func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q", level)
	}
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
	return logger, func() { _ = f.Close() }, nil
}

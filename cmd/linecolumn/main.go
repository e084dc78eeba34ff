package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/shibukawa/linecolumn"
)

// Globals are the flags shared by every command
type Globals struct {
	Config  string `help:"Configuration file path" default:"linecolumn.yaml"`
	Verbose bool   `help:"Enable verbose output" short:"v"`
	Quiet   bool   `help:"Suppress output" short:"q"`
	Origin  string `help:"Number lines and columns from 0 or 1 (overrides config)"`
	Unit    string `help:"Count offsets in rune, byte or utf16 units (overrides config)"`
	Format  string `help:"Output format: text, json or yaml (overrides config)" short:"f"`
	NoColor bool   `help:"Disable colored output"`
}

// Context represents the global context for commands
type Context struct {
	Config  *linecolumn.Config
	Verbose bool
	Quiet   bool
	Stdin   io.Reader
	Stdout  io.Writer
	Logger  zerolog.Logger
}

// CLI represents the command-line interface
var CLI struct {
	Globals

	Locate  LocateCmd  `cmd:"" help:"Convert character indexes to line and column positions"`
	Index   IndexCmd   `cmd:"" help:"Convert line and column positions to character indexes"`
	Lines   LinesCmd   `cmd:"" help:"Show the index of the first character of every line"`
	Batch   BatchCmd   `cmd:"" help:"Resolve indexes and positions listed in a YAML or JSON file"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Stdout, "linecolumn v0.1.0")
	return nil
}

// newContext loads the configuration and applies command line overrides
func newContext(g Globals, stdin io.Reader, stdout, stderr io.Writer) (*Context, error) {
	config, err := linecolumn.LoadConfig(g.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if g.Origin != "" {
		origin, err := strconv.Atoi(g.Origin)
		if err != nil {
			return nil, fmt.Errorf("%w: --origin %q", ErrInvalidFlag, g.Origin)
		}
		config.Origin = &origin
	}
	if g.Unit != "" {
		config.Unit = g.Unit
	}
	if g.Format != "" {
		config.Output.Format = g.Format
	}
	if g.NoColor {
		noColor := false
		config.Output.Color = &noColor
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if !config.ColorEnabled() {
		color.NoColor = true
	}

	return &Context{
		Config:  config,
		Verbose: g.Verbose,
		Quiet:   g.Quiet,
		Stdin:   stdin,
		Stdout:  stdout,
		Logger:  newLogger(stderr, g.Verbose, g.Quiet, config.ColorEnabled()),
	}, nil
}

// newLogger returns the diagnostics logger. Results never go through it.
func newLogger(w io.Writer, verbose, quiet, colored bool) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case quiet:
		level = zerolog.Disabled
	case verbose:
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !colored}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("linecolumn"),
		kong.Description("Convert between character indexes and line/column positions"),
		kong.UsageOnError(),
	)

	appCtx, err := newContext(CLI.Globals, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

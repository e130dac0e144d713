package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for flag parsing.
var (
	ErrInvalidBool        = errors.New("invalid boolean value")
	ErrUnexpectedArgs     = errors.New("unexpected arguments")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// boolValue is a tri-state boolean flag that takes an explicit value
// (--names-in-tiles true). set records whether it was given at all, so an
// unset flag does not override config or environment.
type boolValue struct {
	set   bool
	value bool
}

func (b *boolValue) String() string {
	if !b.set {
		return ""
	}
	return strconv.FormatBool(b.value)
}

func (b *boolValue) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("%w: %q (use true or false)", ErrInvalidBool, s)
	}
	b.set, b.value = true, v
	return nil
}

func (b *boolValue) Type() string {
	return "bool"
}

// Compile-time interface check.
var _ flag.Value = (*boolValue)(nil)

// inputFlags holds the source and destination flags.
type inputFlags struct {
	iconFile     string
	canvasFile   string
	outputFolder string
}

// tileFlags holds the switches that shape the output set.
type tileFlags struct {
	namesInTiles    boolValue
	includeUnplated boolValue
}

// commonFlags holds flags shared with every run.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// cliFlags holds all command-line flags.
type cliFlags struct {
	common  commonFlags
	input   inputFlags
	tiles   tileFlags
	workers int
	dryRun  bool
	help    bool
	version bool
}

// addInputFlags adds source and output flags to a FlagSet.
func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.StringVarP(&f.iconFile, "icon-file", "i", "", "source icon (SVG or raster)")
	fs.StringVarP(&f.canvasFile, "canvas-file", "c", "", "background canvas (default: blank)")
	fs.StringVarP(&f.outputFolder, "output-folder", "o", "", "destination folder (default: ./assets)")
}

// addTileFlags adds the tile switches to a FlagSet.
func addTileFlags(fs *flag.FlagSet, f *tileFlags) {
	fs.VarP(&f.namesInTiles, "names-in-tiles", "n", "names shown in tiles, adds padding (default: false)")
	fs.VarP(&f.includeUnplated, "include-unplated", "u", "generate unplated taskbar icons (default: true)")
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVar(&f.config, "config", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing")
}

// parseFlags parses command-line flags (without the program name).
// Parse errors are printed by the caller, so pflag output is discarded.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("uwptiles", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &cliFlags{}
	addInputFlags(fs, &f.input)
	addTileFlags(fs, &f.tiles)
	addCommonFlags(fs, &f.common)
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel renders (0 = auto)")
	fs.BoolVar(&f.dryRun, "dry-run", false, "list the files without writing them")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	fs.BoolVar(&f.version, "version", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedArgs, fs.Args())
	}
	return f, nil
}

// validateWorkers rejects negative worker counts. Zero means auto.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be 0 or more)", ErrInvalidWorkerCount, n)
	}
	return nil
}

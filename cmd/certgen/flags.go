package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command-line flags. Flag values override config
// file values, which override built-in defaults.
type cliFlags struct {
	config   string
	data     string
	test     bool
	name     string
	template string
	font     string
	out      string
	fontSize float64
	color    string
	workers  int
	mode     string
	date     string
	quiet    bool
	verbose  bool
	version  bool
}

// parseFlags parses args (including the program name at args[0]).
func parseFlags(args []string) (*cliFlags, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("certgen", flag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVarP(&flags.config, "config", "c", "", "config name or path (YAML)")
	fs.StringVarP(&flags.data, "data", "d", "", "CSV file with name,email recipients")
	fs.BoolVar(&flags.test, "test", false, "render a single test certificate instead of a data file")
	fs.StringVar(&flags.name, "name", "", "recipient name for --test")
	fs.StringVar(&flags.template, "template", "", "template PDF path")
	fs.StringVar(&flags.font, "font", "", "TTF font path")
	fs.StringVarP(&flags.out, "out", "o", "", "output directory")
	fs.Float64Var(&flags.fontSize, "font-size", 0, "default font size in points")
	fs.StringVar(&flags.color, "color", "", "default text color as R,G,B (0-255)")
	fs.IntVarP(&flags.workers, "workers", "w", 0, "max concurrent renders (0 = auto)")
	fs.StringVar(&flags.mode, "mode", "", "generation mode: test or production")
	fs.StringVar(&flags.date, "date", "", "override the filename date stamp (e.g. 2025-06-15)")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress per-certificate output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose progress logging")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	return flags, nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	certgen "github.com/avezina/go-certgen"
	"github.com/avezina/go-certgen/internal/dateutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoData = errors.New("no data file specified (use --data, or --test for a single test certificate)")
)

// run executes one batch and returns the process exit code.
func run(flags *cliFlags, env *Environment) int {
	cfg := DefaultConfig()
	if flags.config != "" {
		loaded, err := LoadConfig(flags.config)
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		cfg = loaded
	}

	opts, err := buildOptions(cfg, flags)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	items, err := resolveItems(cfg, flags, opts)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	clock, err := resolveClock(flags, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	logger, flush := buildLogger(flags.verbose)
	defer flush()

	svc, err := certgen.New(opts,
		certgen.WithLogger(logger),
		certgen.WithClock(clock),
	)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	result := svc.Generate(context.Background(), items)
	printResults(result, flags.quiet, env)

	if len(result.Failed) > 0 {
		return ExitFailures
	}
	return ExitSuccess
}

// buildOptions merges defaults, config file values, and flags, in
// ascending precedence.
func buildOptions(cfg *Config, flags *cliFlags) (certgen.GenerationOptions, error) {
	opts := certgen.DefaultOptions()

	// Config file layer
	if cfg.Assets.Template != "" {
		opts.TemplatePath = cfg.Assets.Template
	}
	if cfg.Assets.Font != "" {
		opts.FontPath = cfg.Assets.Font
	}
	if cfg.Output.Dir != "" {
		opts.OutputDir = cfg.Output.Dir
	}
	if cfg.Text.FontSize != 0 {
		opts.FontSize = cfg.Text.FontSize
	}
	if cfg.Text.Color != "" {
		color, err := certgen.ParseRGBColor(cfg.Text.Color)
		if err != nil {
			return opts, err
		}
		opts.FontColor = color
	}
	if cfg.Batch.Mode != "" {
		opts.Mode = cfg.Batch.Mode
	}
	if cfg.Data.TestName != "" {
		opts.TestName = cfg.Data.TestName
	}

	// Flag layer
	if flags.template != "" {
		opts.TemplatePath = flags.template
	}
	if flags.font != "" {
		opts.FontPath = flags.font
	}
	if flags.out != "" {
		opts.OutputDir = flags.out
	}
	if flags.fontSize != 0 {
		opts.FontSize = flags.fontSize
	}
	if flags.color != "" {
		color, err := certgen.ParseRGBColor(flags.color)
		if err != nil {
			return opts, err
		}
		opts.FontColor = color
	}
	if flags.mode != "" {
		opts.Mode = flags.mode
	}
	if flags.test {
		opts.Mode = certgen.ModeTest
	}
	if flags.name != "" {
		opts.TestName = flags.name
	}

	opts.Concurrency = resolveWorkers(firstNonZero(flags.workers, cfg.Batch.Workers))

	return opts, nil
}

// resolveClock picks the clock the filename stamp derives from: a fixed
// day when --date is set, otherwise the environment's wall clock.
func resolveClock(flags *cliFlags, env *Environment) (func() time.Time, error) {
	if flags.date == "" {
		return env.Now, nil
	}

	day, err := dateutil.ParseStamp(flags.date)
	if err != nil {
		return nil, err
	}
	return func() time.Time { return day }, nil
}

// resolveItems produces the batch: the synthesized test item in test
// mode, otherwise the records loaded from the CSV data file.
func resolveItems(cfg *Config, flags *cliFlags, opts certgen.GenerationOptions) ([]certgen.CertificateItem, error) {
	if opts.Mode == certgen.ModeTest {
		return certgen.TestItems(opts), nil
	}

	dataFile := flags.data
	if dataFile == "" {
		dataFile = cfg.Data.File
	}
	if dataFile == "" {
		return nil, ErrNoData
	}

	return certgen.LoadItems(dataFile)
}

// printResults reports the batch outcome: failures to stderr, created
// paths and the summary to stdout.
func printResults(result certgen.BatchResult, quiet bool, env *Environment) {
	for _, f := range result.Failed {
		identity := f.Item.Name
		if f.Item.Email != "" {
			identity += " <" + f.Item.Email + ">"
		}
		fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", identity, f.Err)
	}

	if quiet {
		return
	}

	for _, path := range result.Successful {
		fmt.Fprintf(env.Stdout, "Created %s\n", path)
	}

	summary := result.Summary()
	if summary.Succeeded+summary.Failed > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}
}

func firstNonZero(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

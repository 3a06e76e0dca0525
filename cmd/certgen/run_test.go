package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	certgen "github.com/avezina/go-certgen"
)

func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return env, &stdout, &stderr
}

func TestBuildOptions(t *testing.T) {
	t.Parallel()

	t.Run("flags override config", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{
			Assets: AssetsConfig{Template: "cfg.pdf", Font: "cfg.ttf"},
			Output: OutputConfig{Dir: "cfg-out"},
			Text:   TextConfig{FontSize: 20, Color: "1,2,3"},
			Batch:  BatchConfig{Workers: 2, Mode: "production"},
		}
		flags := &cliFlags{template: "flag.pdf", fontSize: 50, workers: 7}

		opts, err := buildOptions(cfg, flags)
		if err != nil {
			t.Fatalf("buildOptions() = %v, want nil", err)
		}
		if opts.TemplatePath != "flag.pdf" {
			t.Errorf("TemplatePath = %q, want flag value", opts.TemplatePath)
		}
		if opts.FontPath != "cfg.ttf" {
			t.Errorf("FontPath = %q, want config value", opts.FontPath)
		}
		if opts.FontSize != 50 {
			t.Errorf("FontSize = %v, want flag value 50", opts.FontSize)
		}
		if opts.FontColor != (certgen.RGBColor{R: 1, G: 2, B: 3}) {
			t.Errorf("FontColor = %+v, want config color", opts.FontColor)
		}
		if opts.Concurrency != 7 {
			t.Errorf("Concurrency = %d, want flag value 7", opts.Concurrency)
		}
	})

	t.Run("test flag forces test mode", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Batch: BatchConfig{Mode: "production"}}
		flags := &cliFlags{test: true, name: "Demo User"}

		opts, err := buildOptions(cfg, flags)
		if err != nil {
			t.Fatalf("buildOptions() = %v", err)
		}
		if opts.Mode != certgen.ModeTest || opts.TestName != "Demo User" {
			t.Errorf("opts = %+v, want test mode with Demo User", opts)
		}
	})

	t.Run("bad color fails", func(t *testing.T) {
		t.Parallel()

		_, err := buildOptions(DefaultConfig(), &cliFlags{color: "purple"})
		if !errors.Is(err, certgen.ErrInvalidConfig) {
			t.Errorf("buildOptions() = %v, want ErrInvalidConfig", err)
		}
	})
}

func TestResolveItems(t *testing.T) {
	t.Parallel()

	t.Run("test mode synthesizes one item", func(t *testing.T) {
		t.Parallel()

		opts := certgen.DefaultOptions()
		opts.Mode = certgen.ModeTest
		opts.TestName = "Demo User"

		items, err := resolveItems(DefaultConfig(), &cliFlags{}, opts)
		if err != nil {
			t.Fatalf("resolveItems() = %v", err)
		}
		if len(items) != 1 || items[0].Name != "Demo User" {
			t.Errorf("items = %+v", items)
		}
	})

	t.Run("data file from flags", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "r.csv")
		if err := os.WriteFile(path, []byte("Ada,ada@x.com\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		items, err := resolveItems(DefaultConfig(), &cliFlags{data: path}, certgen.DefaultOptions())
		if err != nil {
			t.Fatalf("resolveItems() = %v", err)
		}
		if len(items) != 1 || items[0].Name != "Ada" {
			t.Errorf("items = %+v", items)
		}
	})

	t.Run("no data source", func(t *testing.T) {
		t.Parallel()

		_, err := resolveItems(DefaultConfig(), &cliFlags{}, certgen.DefaultOptions())
		if !errors.Is(err, ErrNoData) {
			t.Errorf("resolveItems() = %v, want ErrNoData", err)
		}
	})
}

func TestPrintResults(t *testing.T) {
	t.Parallel()

	result := certgen.BatchResult{
		Successful: []string{"out/ada.pdf", "out/grace.pdf"},
		Failed: []certgen.FailedItem{
			{
				Item: certgen.CertificateItem{Name: "Bad", Email: "bad@x.com"},
				Err:  errors.New("name cannot be empty"),
			},
		},
	}

	t.Run("normal output", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := testEnv()
		printResults(result, false, env)

		out := stdout.String()
		if !strings.Contains(out, "Created out/ada.pdf") || !strings.Contains(out, "Created out/grace.pdf") {
			t.Errorf("stdout = %q", out)
		}
		if !strings.Contains(out, "2 succeeded, 1 failed") {
			t.Errorf("stdout missing summary: %q", out)
		}

		errOut := stderr.String()
		if !strings.Contains(errOut, "FAILED Bad <bad@x.com>") {
			t.Errorf("stderr = %q, want failure with item identity", errOut)
		}
	})

	t.Run("quiet keeps failures", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := testEnv()
		printResults(result, true, env)

		if stdout.Len() != 0 {
			t.Errorf("stdout = %q, want empty in quiet mode", stdout.String())
		}
		if !strings.Contains(stderr.String(), "FAILED") {
			t.Error("failures must print even in quiet mode")
		}
	})

	t.Run("single success has no summary", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		printResults(certgen.BatchResult{Successful: []string{"one.pdf"}}, false, env)

		if strings.Contains(stdout.String(), "succeeded") {
			t.Errorf("stdout = %q, want no summary line for a single result", stdout.String())
		}
	})
}

func TestResolveClock(t *testing.T) {
	t.Parallel()

	t.Run("defaults to environment clock", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv()
		clock, err := resolveClock(&cliFlags{}, env)
		if err != nil {
			t.Fatalf("resolveClock() = %v, want nil", err)
		}
		if !clock().Equal(env.Now()) {
			t.Errorf("clock() = %v, want environment time %v", clock(), env.Now())
		}
	})

	t.Run("date flag pins the clock", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv()
		clock, err := resolveClock(&cliFlags{date: "2024-01-02"}, env)
		if err != nil {
			t.Fatalf("resolveClock() = %v, want nil", err)
		}
		want := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
		if !clock().Equal(want) {
			t.Errorf("clock() = %v, want %v", clock(), want)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv()
		if _, err := resolveClock(&cliFlags{date: "not a date"}, env); err == nil {
			t.Error("resolveClock() = nil, want error")
		}
	})
}

func TestRun_ExitCodes(t *testing.T) {
	t.Parallel()

	t.Run("missing config is usage error", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		code := run(&cliFlags{config: filepath.Join(t.TempDir(), "nope.yaml")}, env)

		if code != ExitUsage {
			t.Errorf("run() = %d, want ExitUsage", code)
		}
		if stderr.Len() == 0 {
			t.Error("expected error output")
		}
	})

	t.Run("no data source is usage error", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv()
		code := run(&cliFlags{template: "t.pdf", font: "f.ttf"}, env)

		if code != ExitUsage {
			t.Errorf("run() = %d, want ExitUsage", code)
		}
	})

	t.Run("invalid date is usage error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		csvPath := filepath.Join(dir, "r.csv")
		if err := os.WriteFile(csvPath, []byte("Ada,ada@x.com\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		env, _, stderr := testEnv()
		code := run(&cliFlags{data: csvPath, date: "yesterday-ish"}, env)

		if code != ExitUsage {
			t.Errorf("run() = %d, want ExitUsage", code)
		}
		if !strings.Contains(stderr.String(), "invalid date") {
			t.Errorf("stderr = %q, want invalid date message", stderr.String())
		}
	})

	t.Run("missing template is io error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		csvPath := filepath.Join(dir, "r.csv")
		if err := os.WriteFile(csvPath, []byte("Ada,ada@x.com\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		env, _, _ := testEnv()
		code := run(&cliFlags{
			template: filepath.Join(dir, "missing.pdf"),
			font:     filepath.Join(dir, "missing.ttf"),
			data:     csvPath,
		}, env)

		if code != ExitIO {
			t.Errorf("run() = %d, want ExitIO", code)
		}
	})
}

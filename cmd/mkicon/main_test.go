package main

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Mavwarf/mangaicons/internal/config"
	"github.com/Mavwarf/mangaicons/internal/diag"
	"github.com/Mavwarf/mangaicons/internal/eventlog"
	"github.com/Mavwarf/mangaicons/internal/icon"
)

func blank(size int) (image.Image, error) {
	return image.NewNRGBA(image.Rect(0, 0, size, size)), nil
}

func TestParseArgsNone(t *testing.T) {
	opts, err := parseArgs(nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts.command != "" || len(opts.sizes) != 0 || opts.log || opts.verbose {
		t.Errorf("unexpected options: %+v", opts)
	}
}

func TestParseArgsFlags(t *testing.T) {
	opts, err := parseArgs([]string{"-c", "cfg.json", "-o", "out", "-s", "16", "--size", "32", "--supersample", "4", "--log", "--verbose"})
	if err != nil {
		t.Fatal(err)
	}
	if opts.configPath != "cfg.json" || opts.outDir != "out" {
		t.Errorf("configPath/outDir = %q/%q", opts.configPath, opts.outDir)
	}
	if len(opts.sizes) != 2 || opts.sizes[0] != 16 || opts.sizes[1] != 32 {
		t.Errorf("sizes = %v", opts.sizes)
	}
	if opts.supersample != 4 || !opts.log || !opts.verbose {
		t.Errorf("unexpected options: %+v", opts)
	}
}

func TestParseArgsCommands(t *testing.T) {
	tests := []struct {
		args []string
		cmd  string
		rest int
	}{
		{[]string{"help"}, "help", 0},
		{[]string{"--version"}, "version", 0},
		{[]string{"history", "clean", "7"}, "history", 2},
		{[]string{"--verbose", "history"}, "history", 0},
	}
	for _, tt := range tests {
		opts, err := parseArgs(tt.args)
		if err != nil {
			t.Errorf("parseArgs(%v): %v", tt.args, err)
			continue
		}
		if opts.command != tt.cmd || len(opts.args) != tt.rest {
			t.Errorf("parseArgs(%v) = %q %v, want %q with %d args", tt.args, opts.command, opts.args, tt.cmd, tt.rest)
		}
	}
}

func TestParseArgsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--size"},
		{"--size", "big"},
		{"--supersample", "x"},
		{"--config"},
		{"--out"},
		{"render"},
	} {
		if _, err := parseArgs(args); err == nil {
			t.Errorf("parseArgs(%v) = nil error", args)
		}
	}
}

func TestApplyOptions(t *testing.T) {
	cfg := config.Default()
	got := applyOptions(cfg, options{sizes: []int{128}, outDir: "dist", supersample: 2, log: true})
	if len(got.Sizes) != 1 || got.Sizes[0] != 128 {
		t.Errorf("Sizes = %v", got.Sizes)
	}
	if got.OutputDir != "dist" || got.Supersample != 2 || !got.Log {
		t.Errorf("unexpected config: %+v", got)
	}
}

func TestApplyOptionsKeepsConfig(t *testing.T) {
	cfg := config.Default()
	cfg.OutputDir = "icons"
	cfg.Supersample = 3
	got := applyOptions(cfg, options{})
	if got.OutputDir != "icons" || got.Supersample != 3 || len(got.Sizes) != 2 {
		t.Errorf("options without values changed config: %+v", got)
	}
}

func TestGeneratePrintsCreatedLines(t *testing.T) {
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()

	var out bytes.Buffer
	results, err := generate(&out, blank, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	want := "Created icon-48.png\nCreated icon-96.png\nIcons created successfully!\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestGenerateUnavailablePrintsRemediation(t *testing.T) {
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	render := func(int) (image.Image, error) { return nil, icon.ErrUnavailable }

	var out bytes.Buffer
	_, err := generate(&out, render, cfg)
	if !errors.Is(err, icon.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if !strings.Contains(out.String(), "generate-icons.html") {
		t.Errorf("remediation not printed:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Created") {
		t.Errorf("reported files despite failure:\n%s", out.String())
	}
	entries, _ := os.ReadDir(cfg.OutputDir)
	if len(entries) != 0 {
		t.Errorf("expected no files, found %d", len(entries))
	}
}

func TestRecordResultsAndHistory(t *testing.T) {
	store, err := eventlog.NewSQLiteStore(filepath.Join(t.TempDir(), "mkicon.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	results, err := generate(&bytes.Buffer{}, blank, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := recordResults(store, results, 2, time.Now()); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := history(&out, store, nil); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("history lines = %d, want 2:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "icon-48.png") || !strings.Contains(lines[1], "icon-96.png") {
		t.Errorf("unexpected history:\n%s", out.String())
	}
	if !strings.Contains(lines[0], "x2") {
		t.Errorf("supersample missing from history line: %q", lines[0])
	}
}

func TestHistoryClearAndEmpty(t *testing.T) {
	store, err := eventlog.NewSQLiteStore(filepath.Join(t.TempDir(), "mkicon.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	store.Log(eventlog.Record{File: "icon-48.png", Size: 48})

	var out bytes.Buffer
	if err := history(&out, store, []string{"clear"}); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := history(&out, store, []string{"3"}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "No generations logged") {
		t.Errorf("output = %q", out.String())
	}
}

func TestHistoryRejectsBadDays(t *testing.T) {
	store, err := eventlog.NewSQLiteStore(filepath.Join(t.TempDir(), "mkicon.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	for _, args := range [][]string{{"0"}, {"soon"}, {"clean"}, {"clean", "-1"}} {
		if err := history(&bytes.Buffer{}, store, args); err == nil {
			t.Errorf("history(%v) = nil error", args)
		}
	}
}

func TestVerboseLogsThemeAndOutputDir(t *testing.T) {
	var logs bytes.Buffer
	diag.Init(&logs, true)
	t.Cleanup(diag.Reset)

	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	cfg.Theme.Accent = "#112233"
	if _, err := newRenderFunc(cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := generate(&bytes.Buffer{}, blank, cfg); err != nil {
		t.Fatal(err)
	}

	out := logs.String()
	for _, want := range []string{"accent=#112233", "fill=#667eea", "paper=#ffffffe6", "output dir " + cfg.OutputDir} {
		if !strings.Contains(out, want) {
			t.Errorf("diagnostics missing %q:\n%s", want, out)
		}
	}
}

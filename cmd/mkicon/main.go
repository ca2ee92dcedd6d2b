// mkicon draws the Manga Translator placeholder icons (icon-48.png and
// icon-96.png by default) into the current directory.
// Usage: go run ./cmd/mkicon [options]
package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/Mavwarf/mangaicons/internal/config"
	"github.com/Mavwarf/mangaicons/internal/diag"
	"github.com/Mavwarf/mangaicons/internal/eventlog"
	"github.com/Mavwarf/mangaicons/internal/icon"
	"github.com/Mavwarf/mangaicons/internal/runner"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// options holds the parsed command line.
type options struct {
	configPath  string
	outDir      string
	sizes       []int
	supersample int
	log         bool
	verbose     bool
	command     string
	args        []string
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'mkicon help' for usage.\n")
		os.Exit(1)
	}
	diag.Init(os.Stderr, opts.verbose)

	switch opts.command {
	case "help":
		printUsage()
	case "version":
		printVersion()
	case "history":
		runHistory(opts.args)
	default:
		runGenerate(opts)
	}
}

func parseArgs(args []string) (options, error) {
	var opts options
	var rest []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--config requires a file path")
			}
			opts.configPath = args[i+1]
			i++
		case "--out", "-o":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--out requires a directory")
			}
			opts.outDir = args[i+1]
			i++
		case "--size", "-s":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--size requires a value")
			}
			v, err := strconv.Atoi(args[i+1])
			if err != nil {
				return opts, fmt.Errorf("size must be a number, got %q", args[i+1])
			}
			opts.sizes = append(opts.sizes, v)
			i++
		case "--supersample":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--supersample requires a value (1-%d)", icon.MaxSupersample)
			}
			v, err := strconv.Atoi(args[i+1])
			if err != nil {
				return opts, fmt.Errorf("supersample must be a number, got %q", args[i+1])
			}
			opts.supersample = v
			i++
		case "--log":
			opts.log = true
		case "--verbose":
			opts.verbose = true
		default:
			rest = append(rest, args[i])
		}
	}

	if len(rest) == 0 {
		return opts, nil
	}
	switch rest[0] {
	case "help", "-h", "--help":
		opts.command = "help"
	case "version", "-V", "--version":
		opts.command = "version"
	case "history":
		opts.command = "history"
	default:
		return opts, fmt.Errorf("unknown argument %q", rest[0])
	}
	opts.args = rest[1:]
	return opts, nil
}

// applyOptions lets command-line values override the config file.
func applyOptions(cfg config.Config, opts options) config.Config {
	if len(opts.sizes) > 0 {
		cfg.Sizes = opts.sizes
	}
	if opts.outDir != "" {
		cfg.OutputDir = opts.outDir
	}
	if opts.supersample != 0 {
		cfg.Supersample = opts.supersample
	}
	if opts.log {
		cfg.Log = true
	}
	return cfg
}

func runGenerate(opts options) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg = applyOptions(cfg, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	diag.ConfigLoaded(cfg.Path, cfg.Sizes, cfg.Supersample)

	render, err := newRenderFunc(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	results, err := generate(os.Stdout, render, cfg)
	if errors.Is(err, icon.ErrUnavailable) {
		// Guidance only; the run still counts as finished.
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Log {
		logResults(results, cfg.Supersample)
	}
}

// newRenderFunc binds the configured theme and supersample factor.
func newRenderFunc(cfg config.Config) (runner.RenderFunc, error) {
	th, err := cfg.IconTheme()
	if err != nil {
		return nil, err
	}
	diag.Debugf("theme fill=%s outline=%s accent=%s paper=%s ink=%s",
		icon.Hex(th.Fill), icon.Hex(th.Outline), icon.Hex(th.Accent), icon.Hex(th.Paper), icon.Hex(th.Ink))
	ro := icon.Options{Theme: &th, Supersample: cfg.Supersample}
	return func(size int) (image.Image, error) {
		start := time.Now()
		img, err := icon.Render(size, ro)
		if err != nil {
			return nil, err
		}
		diag.Rendered(size, cfg.Supersample, time.Since(start))
		return img, nil
	}, nil
}

// generate writes every configured icon and reports each file on w.
// When the renderer is unavailable it prints the remediation text instead
// and returns an error wrapping icon.ErrUnavailable; no files are written.
func generate(w io.Writer, render runner.RenderFunc, cfg config.Config) ([]runner.Result, error) {
	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	diag.Debugf("output dir %s", dir)
	jobs := runner.Plan(cfg.OutputDir, cfg.Filename, cfg.Sizes)
	results, err := runner.Execute(render, jobs)
	if errors.Is(err, icon.ErrUnavailable) {
		fmt.Fprint(w, runner.Remediation(cfg.Sizes))
		return nil, err
	}
	for _, r := range results {
		fmt.Fprintf(w, "Created %s\n", r.Name())
		diag.Wrote(r.Path, r.Bytes, r.SHA256)
	}
	if err != nil {
		return results, err
	}
	fmt.Fprintln(w, "Icons created successfully!")
	return results, nil
}

// logResults appends the written files to the generation log.
// Best-effort: failures are reported but never fail the run.
func logResults(results []runner.Result, supersample int) {
	store, err := eventlog.NewSQLiteStore(eventlog.DefaultPath())
	if err != nil {
		diag.Warnf("eventlog: %v", err)
		return
	}
	defer store.Close()

	if err := recordResults(store, results, supersample, time.Now()); err != nil {
		diag.Warnf("eventlog: %v", err)
	}
}

func recordResults(store eventlog.Store, results []runner.Result, supersample int, now time.Time) error {
	for _, r := range results {
		dir, err := filepath.Abs(filepath.Dir(r.Path))
		if err != nil {
			dir = filepath.Dir(r.Path)
		}
		err = store.Log(eventlog.Record{
			Time:        now,
			Dir:         dir,
			File:        r.Name(),
			Size:        r.Size,
			Bytes:       r.Bytes,
			SHA256:      r.SHA256,
			Supersample: supersample,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func printVersion() {
	fmt.Printf("mkicon %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
	if !icon.Available() {
		fmt.Println("renderer: not available (built with -tags nogg)")
	}
}

func printUsage() {
	fmt.Printf("mkicon %s - Draw the Manga Translator placeholder icons\n", version)
	fmt.Println(`
Usage:
  mkicon [options]
  mkicon history [days]
  mkicon history clean <days>
  mkicon history clear

Options:
  --config, -c <path>    Path to mkicon-config.json
  --out, -o <dir>        Output directory (default: current directory)
  --size, -s <n>         Icon size in pixels, repeatable (default: 48 and 96)
  --supersample <1-8>    Draw at n times the size and downscale
  --log                  Record written files in the generation log
  --verbose              Print debug diagnostics on stderr

Commands:
  history                List logged generations (optionally last N days)
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Config resolution:
  1. --config <path>                      (explicit)
  2. mkicon-config.json next to binary    (portable)
  3. ~/.config/mkicon/mkicon-config.json  (user default)
  Built-in defaults apply when none is found.

Examples:
  mkicon                           Write icon-48.png and icon-96.png here
  mkicon -o icons -s 128           Write icons/icon-128.png
  mkicon --supersample 4 --log     Smoother edges, record the run`)
}

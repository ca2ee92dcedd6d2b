// Package diag writes diagnostic logs for mkicon on stderr.
// User-facing output stays on stdout; nothing here is required for a run.
package diag

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var (
	logger = zerolog.Nop()
	logMu  sync.Mutex
)

// Init routes diagnostics to w. Color is used only when w is a terminal.
// verbose lowers the level from info to debug.
func Init(w io.Writer, verbose bool) {
	logMu.Lock()
	defer logMu.Unlock()

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    !isTerminal(w),
	}
	logger = zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
}

// Reset discards all diagnostics again.
func Reset() {
	logMu.Lock()
	defer logMu.Unlock()
	logger = zerolog.Nop()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func Debugf(format string, args ...any) {
	logger.Debug().Msgf(format, args...)
}

func Warnf(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}

// ConfigLoaded records where settings came from.
func ConfigLoaded(path string, sizes []int, supersample int) {
	if path == "" {
		path = "(defaults)"
	}
	logger.Debug().
		Str("path", path).
		Ints("sizes", sizes).
		Int("supersample", supersample).
		Msg("config")
}

// Rendered records one finished icon render.
func Rendered(size, supersample int, elapsed time.Duration) {
	logger.Debug().
		Int("size", size).
		Int("supersample", supersample).
		Float64("ms", float64(elapsed.Microseconds())/1000).
		Msg("render")
}

// Wrote records one written icon file.
func Wrote(path string, bytes int, sha string) {
	logger.Info().
		Str("path", path).
		Int("bytes", bytes).
		Str("sha256", sha).
		Msg("write")
}

package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/tofuutils/setup-tenv/internal/config"
)

// debugEnabled reports whether debug logging was requested by flag, config,
// or GitHub Actions step debugging (RUNNER_DEBUG=1).
func debugEnabled() bool {
	return debugFlag || config.GetBool(config.KeyDebug) || os.Getenv("RUNNER_DEBUG") == "1"
}

// newLogger returns a text logger on w. Without debug, only warnings and
// errors are emitted.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

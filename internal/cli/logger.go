package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// newLogger builds the run logger for one crossgrid invocation. Records go to
// w (stderr in practice, so grids on stdout stay clean) at the given level,
// as text or JSON, each tagged with a fresh run_id.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler = slog.NewTextHandler(w, opts)
	if format == "json" {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h).With(slog.String("run_id", uuid.NewString()))
}

func validateLogFlags(level, format string) error {
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", level)
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", format)
	}
	return nil
}

func lower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Package logging builds the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// New returns a slog logger writing tinted console output to w. Callers that
// serve MCP over stdio must pass stderr so protocol frames on stdout stay
// clean.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "2006-01-02 15:04:05",
	}))
}

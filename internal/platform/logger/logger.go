package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger; handlers and services take
// it as an explicit dependency rather than reaching for slog.Default.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

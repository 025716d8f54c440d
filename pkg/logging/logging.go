// Package logging builds the structured loggers used across isagen.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/afero"
)

type Options struct {
	// Minimum level of the records written to the console
	Level slog.Level
	// Human readable output, stderr if nil
	Console io.Writer
	// Optional JSON output receiving every record, regardless of Level
	File io.Writer
}

// Creates a logger writing text records to the console and, if set, JSON records to a file
func New(options Options) *slog.Logger {
	console := options.Console
	if console == nil {
		console = os.Stderr
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(console, &slog.HandlerOptions{Level: options.Level}),
	}

	if options.File != nil {
		handlers = append(handlers, slog.NewJSONHandler(options.File, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// Parses a level name ("debug", "info", "warn", "error"), case insensitive
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level '%v': %w", name, err)
	}

	return level, nil
}

// Opens a log file for appending, creating it if needed
func OpenFile(fs afero.Fs, path string) (io.WriteCloser, error) {
	file, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

package logging

import (
	"context"
	"log/slog"
	"strings"
)

// Writer is an io.Writer implementation that forwards external tool output to slog.
type Writer struct {
	logger *slog.Logger
	level  Level
}

// NewWriter constructs a Writer bound to the provided logger, emitting at the
// given level.
func NewWriter(logger *slog.Logger, level Level) *Writer {
	return &Writer{logger: logger, level: level}
}

// Write logs each non-empty line of p at the configured level.
func (w *Writer) Write(p []byte) (int, error) {
	if w.logger != nil {
		for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
			if line == "" {
				continue
			}
			w.logger.Log(context.Background(), slog.Level(w.level), "tool output", "line", line)
		}
	}
	return len(p), nil
}

package bitvec

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with bitvec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithBits adds a bits (vector length) field to the logger.
func (l *Logger) WithBits(nbits uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("bits", nbits),
	}
}

// LogAlloc logs a vector allocation.
func (l *Logger) LogAlloc(ctx context.Context, nbits uint64, bytes int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "allocation failed",
			"bits", nbits,
			"bytes", bytes,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "allocation completed",
			"bits", nbits,
			"bytes", bytes,
		)
	}
}

// LogRankBuild logs a rank index rebuild.
func (l *Logger) LogRankBuild(ctx context.Context, words int, workers int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "rank build failed",
			"words", words,
			"workers", workers,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "rank build completed",
			"words", words,
			"workers", workers,
			"elapsed", elapsed,
		)
	}
}

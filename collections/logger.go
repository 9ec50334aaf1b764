package collections

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the field names used by List operations.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// LogMaterialize logs an insertion batch. A non-nil err means the batch was
// rejected and the list left unchanged.
func (l *Logger) LogMaterialize(op Op, inputs, length int, err error) {
	if err != nil {
		l.Warn("batch rejected",
			"op", string(op),
			"inputs", inputs,
			"length", length,
			"error", err,
		)
		return
	}
	l.Debug("batch indexed",
		"op", string(op),
		"inputs", inputs,
		"length", length,
	)
}

// LogRetract logs the removal of count elements.
func (l *Logger) LogRetract(op Op, count, length int) {
	l.Debug("elements retracted",
		"op", string(op),
		"count", count,
		"length", length,
	)
}

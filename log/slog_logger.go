package log

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogLogger forwards log statements to a 'slog.Logger', the out-of-the-box implementation for applications which
// don't carry their own logging library.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a logger forwarding to the given 'slog.Logger'; a <nil> logger results in forwarding to
// 'slog.Default'.
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogLogger{logger: logger}
}

// Log implements 'Logger', formatting then forwarding at the closest 'slog' level.
func (s *SlogLogger) Log(level Level, format string, args ...any) {
	s.logger.Log(context.Background(), slogLevel(level), fmt.Sprintf(format, args...))
}

// slogLevel converts the given level to the closest 'slog' level; 'slog' has no trace or panic levels so they map
// just beyond debug and error respectively.
func slogLevel(level Level) slog.Level {
	switch level {
	case LevelTrace:
		return slog.LevelDebug - 4
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelError + 4
	}
}

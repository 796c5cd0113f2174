// Package tallylog provides the ambient logging used across this
// repository: leveled, formatted log lines backed by the standard
// library's log/slog, matching the call shape of the teacher service's
// own internal log.Info(format, args...) / log.Trace(format, args...)
// helpers (whose own definitions live outside this repository's
// retrieved source).
package tallylog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// SetLevel adjusts the minimum level logged. Trace is mapped to a level
// below slog's Debug so that --verbose output can be distinguished from
// ordinary debug output without inventing a parallel logging stack.
func SetLevel(level slog.Level) {
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

const LevelTrace = slog.LevelDebug - 4

// Infof logs a formatted message at info level.
func Infof(format string, args ...any) {
	logger.Info(fmtf(format, args...))
}

// Tracef logs a formatted message at trace level (below debug), used
// for the vote map's end-of-count summary dump.
func Tracef(format string, args ...any) {
	logger.Log(context.Background(), LevelTrace, fmtf(format, args...))
}

// Warnf logs a formatted message at warn level.
func Warnf(format string, args ...any) {
	logger.Warn(fmtf(format, args...))
}

// Errorf logs a formatted message at error level.
func Errorf(format string, args ...any) {
	logger.Error(fmtf(format, args...))
}

func fmtf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

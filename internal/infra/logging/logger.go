// Package logging provides line-formatted logging for homesol.
// Entries go to stderr by default or to a log file when one is configured.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes leveled entries to a single destination.
// Fields are ordered to minimize memory padding.
type Logger struct {
	out   io.Writer
	file  *os.File // Non-nil when the logger owns the destination
	now   func() time.Time
	mu    sync.Mutex
	level slog.Level
}

// New creates a Logger writing to out. A nil out disables logging.
func New(out io.Writer, level slog.Level) *Logger {
	return &Logger{out: out, level: level, now: time.Now}
}

// NewFile creates a Logger appending to the file at path, creating parent directories.
// An empty path logs to stderr.
func NewFile(path string, level slog.Level) (*Logger, error) {
	if path == "" {
		return New(os.Stderr, level), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := New(f, level)
	l.file = f
	return l, nil
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Close closes the log file if the logger opened one.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.out = nil
	return err
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [project-1] [assign] message
func formatLog(t time.Time, level slog.Level, projectID int, category, msg string) string {
	scope := "global"
	if projectID > 0 {
		scope = fmt.Sprintf("project-%d", projectID)
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		scope,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *Logger) log(level slog.Level, projectID int, category, msg string) {
	if level < l.level {
		return // Skip if below minimum level
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.out == nil {
		return // Logging disabled
	}
	_, _ = io.WriteString(l.out, formatLog(l.now(), level, projectID, category, msg))
}

// Info logs an info message.
func (l *Logger) Info(projectID int, category, msg string) {
	l.log(slog.LevelInfo, projectID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(projectID int, category, msg string) {
	l.log(slog.LevelDebug, projectID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(projectID int, category, msg string) {
	l.log(slog.LevelWarn, projectID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(projectID int, category, msg string) {
	l.log(slog.LevelError, projectID, category, msg)
}

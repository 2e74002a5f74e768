// Package logging provides file-based logging for kode.
// Workflow progress is appended to .kodebase/logs/kode.log so a crashed
// or re-run completion can be reconstructed after the fact.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/kodebase/kode/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger appends formatted entries to the workflow log file.
type Logger struct {
	file        *os.File
	kodebaseDir string
	mu          sync.Mutex
	level       slog.Level
}

// New creates a new Logger that writes under the .kodebase directory.
// If kodebaseDir is empty, logging is disabled (no-op logger).
func New(kodebaseDir string, level slog.Level) *Logger {
	return &Logger{kodebaseDir: kodebaseDir, level: level}
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

// ensureFile opens or returns the log file.
func (l *Logger) ensureFile() (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file, nil
	}

	path := domain.GlobalLogPath(l.kodebaseDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// formatLog formats a log entry.
// Format: [2025-06-01 12:30:00] [INFO] [A.1.3] [merge] message
func formatLog(t time.Time, level slog.Level, issueID, category, msg string) string {
	if issueID == "" {
		issueID = "global"
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		issueID,
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

// log writes an entry if the level passes the threshold.
func (l *Logger) log(level slog.Level, issueID, category, msg string) {
	if l.kodebaseDir == "" {
		return // Logging disabled
	}
	if level < l.level {
		return
	}

	entry := formatLog(time.Now(), level, issueID, category, msg)
	if f, err := l.ensureFile(); err == nil {
		_, _ = io.WriteString(f, entry)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(issueID, category, msg string) {
	l.log(slog.LevelDebug, issueID, category, msg)
}

// Info logs an info message.
func (l *Logger) Info(issueID, category, msg string) {
	l.log(slog.LevelInfo, issueID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(issueID, category, msg string) {
	l.log(slog.LevelWarn, issueID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(issueID, category, msg string) {
	l.log(slog.LevelError, issueID, category, msg)
}

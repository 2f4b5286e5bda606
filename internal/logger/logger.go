// Package logger provides a dual-output logger that writes to both stderr
// and a timestamped per-run log file in the user cache directory.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Logger writes to both stderr and a log file simultaneously.
type Logger struct {
	w    io.Writer
	file *os.File
}

// DefaultDir returns the log directory, <UserCacheDir>/pmx/logs.
func DefaultDir() (string, error) {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(cache, "pmx", "logs"), nil
}

// New creates a logger that writes to stderr and to <dir>/<verb>-<ts>.log.
func New(dir, verb string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create logs dir: %w", err)
	}

	ts := time.Now().Format("20060102-150405")
	logPath := filepath.Join(dir, fmt.Sprintf("%s-%s.log", verb, ts))

	f, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	return &Logger{
		w:    io.MultiWriter(os.Stderr, f),
		file: f,
	}, nil
}

// NewDiscard returns a logger that drops everything (used in tests and when
// no log directory is available).
func NewDiscard() *Logger {
	return &Logger{w: io.Discard}
}

// LogPath returns the path of the current log file, or empty string if discarded.
func (l *Logger) LogPath() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Write implements io.Writer — forwards to the underlying multi-writer.
func (l *Logger) Write(p []byte) (n int, err error) {
	return l.w.Write(p)
}

// Printf writes a formatted line to the log.
func (l *Logger) Printf(format string, args ...any) {
	fmt.Fprintf(l.w, format+"\n", args...)
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// LatestLogPath returns the path to the most recent run log in dir.
// Returns "" if no logs exist.
func LatestLogPath(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) == 0 {
		return ""
	}
	// ReadDir returns entries sorted by name; the timestamp suffix makes the
	// last file the newest within a verb, but not across verbs, so pick by
	// mod time instead.
	latest := ""
	var latestMod time.Time
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestMod) {
			latest = filepath.Join(dir, e.Name())
			latestMod = info.ModTime()
		}
	}
	return latest
}

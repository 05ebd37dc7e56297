package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// rotatingWriter appends to one log file per ISO week and deletes files older
// than the retention window. Rotation happens lazily on write.
type rotatingWriter struct {
	dir       string
	retention time.Duration

	mu          sync.Mutex
	file        *os.File
	currentWeek string
	lastSweep   time.Time
}

func newRotatingWriter(dir string, retentionWeeks int) *rotatingWriter {
	return &rotatingWriter{
		dir:       dir,
		retention: time.Duration(retentionWeeks) * 7 * 24 * time.Hour,
	}
}

func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func (rw *rotatingWriter) Write(p []byte) (int, error) {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	now := time.Now()
	week := weekKey(now)
	if rw.file == nil || week != rw.currentWeek {
		if err := rw.rotate(week); err != nil {
			return 0, err
		}
		rw.sweep(now)
	}
	return rw.file.Write(p)
}

// rotate opens the log file for the given week (caller holds the lock).
func (rw *rotatingWriter) rotate(week string) error {
	if rw.file != nil {
		if err := rw.file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}

	path := filepath.Join(rw.dir, fmt.Sprintf("app-%s.log", week))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}
	rw.file = f
	rw.currentWeek = week
	return nil
}

// sweep removes log files past retention, at most once a day.
func (rw *rotatingWriter) sweep(now time.Time) {
	if now.Sub(rw.lastSweep) < 24*time.Hour {
		return
	}
	rw.lastSweep = now

	entries, err := os.ReadDir(rw.dir)
	if err != nil {
		return
	}
	cutoff := now.Add(-rw.retention)
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "app-") || !strings.HasSuffix(e.Name(), ".log") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(rw.dir, e.Name()))
		}
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup builds a logger that writes text to the console and JSON to the
// rotating weekly file. If the log directory cannot be created it degrades to
// console-only.
func Setup(logDir, level string) *slog.Logger {
	lvl := parseLevel(level)
	console := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		logger := slog.New(console)
		logger.Error("Failed to create logs directory, logging to console only", "error", err)
		return logger
	}

	file := slog.NewJSONHandler(newRotatingWriter(logDir, 4), &slog.HandlerOptions{Level: lvl})
	return slog.New(&teeHandler{handlers: []slog.Handler{console, file}})
}

// teeHandler fans one record out to several handlers.
type teeHandler struct {
	handlers []slog.Handler
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range t.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		out[i] = h.WithAttrs(attrs)
	}
	return &teeHandler{handlers: out}
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		out[i] = h.WithGroup(name)
	}
	return &teeHandler{handlers: out}
}

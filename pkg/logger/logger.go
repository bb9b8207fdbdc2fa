// Package logger writes structured logs to a file. The terminal belongs to the
// TUI, so nothing here ever touches stdout.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu       sync.Mutex
	levelVar = new(slog.LevelVar)
	out      io.Closer
	log      = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Init opens path for appending and routes all logging there. Calling Init
// again replaces the previous destination.
func Init(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}
	SetOutput(f)
	Info("logger initialized", "path", path)
	return nil
}

// SetOutput routes logging to w. If w is an io.Closer it is closed by Close.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	var closeErr error
	if out != nil {
		closeErr = out.Close()
		out = nil
	}
	if c, ok := w.(io.Closer); ok {
		out = c
	}
	log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
	if closeErr != nil {
		log.Warn("closing previous log output failed", "error", closeErr)
	}
}

// SetDebug enables debug level logging
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

func logAt(level slog.Level, msg string, args ...any) {
	mu.Lock()
	l := log
	mu.Unlock()
	l.Log(context.Background(), level, msg, args...)
}

func Debug(msg string, args ...any) { logAt(slog.LevelDebug, msg, args...) }
func Info(msg string, args ...any)  { logAt(slog.LevelInfo, msg, args...) }
func Warn(msg string, args ...any)  { logAt(slog.LevelWarn, msg, args...) }
func Error(msg string, args ...any) { logAt(slog.LevelError, msg, args...) }

// Close flushes and closes the log file, falling back to discarding output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	var err error
	if out != nil {
		err = out.Close()
		out = nil
	}
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
	return err
}

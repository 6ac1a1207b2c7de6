package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger writes text to stderr and, when file is set, JSON to that file.
// The returned closer releases the file.
func newLogger(stderr io.Writer, levelName, file string) (*slog.Logger, io.Closer, error) {
	level := new(slog.LevelVar)
	l, err := parseLevel(levelName)
	if err != nil {
		return nil, nil, err
	}
	level.Set(l)

	opts := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{slog.NewTextHandler(stderr, opts)}

	var closer io.Closer = nopCloser{}
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
		closer = f
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// stdLogger adapts slog for libraries that want a *log.Logger.
func stdLogger(logger *slog.Logger, level slog.Level) *log.Logger {
	return slog.NewLogLogger(logger.Handler(), level)
}

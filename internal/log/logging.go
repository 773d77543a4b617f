// Package log builds the configured slog.Logger used by the CLI.
//
// Without a log file, non-error records go to stdout and errors to
// stderr so command output can be piped while errors stay visible.
// With a log file, everything is duplicated into the file as well.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// ParseLevel maps a CLI level string to a slog.Level, defaulting to
// info for anything unrecognized.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout duplicates records across several handlers.
type fanout struct{ hs []slog.Handler }

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f.hs {
		_ = h.Handle(ctx, r)
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(f.hs))
	for i, h := range f.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return fanout{hs: out}
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(f.hs))
	for i, h := range f.hs {
		out[i] = h.WithGroup(name)
	}
	return fanout{hs: out}
}

// levelRange passes only records within [min, max] to its delegate.
type levelRange struct {
	min, max slog.Level
	h        slog.Handler
}

func (l levelRange) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= l.min && level <= l.max && l.h.Enabled(ctx, level)
}

func (l levelRange) Handle(ctx context.Context, r slog.Record) error {
	if r.Level < l.min || r.Level > l.max {
		return nil
	}
	return l.h.Handle(ctx, r)
}

func (l levelRange) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelRange{min: l.min, max: l.max, h: l.h.WithAttrs(attrs)}
}

func (l levelRange) WithGroup(name string) slog.Handler {
	return levelRange{min: l.min, max: l.max, h: l.h.WithGroup(name)}
}

// Setup builds the logger. The returned closers own any opened log
// file and must be closed on exit.
func Setup(levelStr, file string) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(levelStr)

	handlers := []slog.Handler{
		levelRange{
			min: level, max: slog.LevelError - 1,
			h: slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}),
		},
		levelRange{
			min: slog.LevelError, max: slog.Level(127),
			h: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}),
		},
	}

	var closers []io.Closer
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, f)
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(fanout{hs: handlers}), closers, nil
}

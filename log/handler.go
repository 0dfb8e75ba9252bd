package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// formatterHandler adapts a LogFormatter to the slog.Handler interface, so
// the text/JSON/color renderers can back a real Logger instead of only
// being exercised by their own tests.
type formatterHandler struct {
	out       io.Writer
	level     slog.Level
	formatter LogFormatter
	attrs     []slog.Attr
	group     string
}

func newFormatterHandler(out io.Writer, level slog.Level, f LogFormatter) *formatterHandler {
	return &formatterHandler{out: out, level: level, formatter: f}
}

// Enabled reports whether level is at or above the handler's configured level.
func (h *formatterHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle renders r through the handler's formatter and writes one line.
func (h *formatterHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(map[string]interface{}, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		fields[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		fields[h.qualify(a.Key)] = a.Value.Any()
		return true
	})

	entry := LogEntry{
		Timestamp: r.Time,
		Level:     slogToLogLevel(r.Level),
		Message:   r.Message,
		Fields:    fields,
	}
	_, err := fmt.Fprintln(h.out, h.formatter.Format(entry))
	return err
}

// WithAttrs returns a handler that includes attrs on every future record.
func (h *formatterHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		next.attrs = append(next.attrs, slog.Attr{Key: h.qualify(a.Key), Value: a.Value})
	}
	return &next
}

// WithGroup returns a handler that qualifies future attrs with name.
func (h *formatterHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.group = joinGroup(h.group, name)
	return &next
}

func (h *formatterHandler) qualify(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}

func joinGroup(outer, inner string) string {
	if outer == "" {
		return inner
	}
	return outer + "." + inner
}

// slogToLogLevel maps a slog.Level back onto the package's own LogLevel
// scale, collapsing any intermediate/custom slog levels to their nearest
// named level.
func slogToLogLevel(l slog.Level) LogLevel {
	switch {
	case l < slog.LevelInfo:
		return DEBUG
	case l < slog.LevelWarn:
		return INFO
	case l < slog.LevelError:
		return WARN
	default:
		return ERROR
	}
}

// formatterForName resolves a --log-format flag value to a LogFormatter.
// Unrecognised names fall back to JSONFormatter, matching LevelFromString's
// permissive default.
func formatterForName(name string) LogFormatter {
	switch name {
	case "text":
		return &TextFormatter{}
	case "color":
		return &ColorFormatter{}
	default:
		return &JSONFormatter{}
	}
}

package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// PrettyHandler prints human-readable records for local development.
type PrettyHandler struct {
	opts  *slog.HandlerOptions
	attrs []slog.Attr
	mu    sync.Mutex
	out   *os.File
}

func SetupPrettySlog() *slog.Logger {
	return slog.New(&PrettyHandler{
		opts: &slog.HandlerOptions{Level: slog.LevelDebug},
		out:  os.Stdout,
	})
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	line := fmt.Sprintf("%s [%s] %s", r.Time.Format("15:04:05.000"), r.Level.String(), r.Message)
	for _, a := range h.attrs {
		line += fmt.Sprintf(" %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		line += fmt.Sprintf(" %s=%v", a.Key, a.Value)
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.out, line)
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyHandler{
		opts:  h.opts,
		attrs: append(append([]slog.Attr{}, h.attrs...), attrs...),
		out:   h.out,
	}
}

func (h *PrettyHandler) WithGroup(_ string) slog.Handler {
	return h
}

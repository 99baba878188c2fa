package observability

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// NewLogger opens (or creates) the log file at path and returns a text
// logger writing to it. Every record carries a session id so lines from
// separate runs can be told apart. The caller closes the returned file.
//
// The terminal belongs to the TUI, so nothing is written to stderr.
func NewLogger(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, level, uuid.NewString()), f, nil
}

func newLogger(w io.Writer, level slog.Level, session string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("session", session)
}

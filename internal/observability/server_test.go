package observability

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_Healthz(t *testing.T) {
	srv := NewServer(":0", slog.New(slog.DiscardHandler))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	srv := NewServer(":0", slog.New(slog.DiscardHandler))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestServer_RejectsWrongMethod(t *testing.T) {
	srv := NewServer(":0", slog.New(slog.DiscardHandler))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNewLogger_TagsSession(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, slog.LevelInfo, "run-1")

	logger.Debug("hidden")
	logger.Info("clock added", "id", "abc")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `msg="clock added"`)
	assert.Contains(t, out, "session=run-1")
	assert.Contains(t, out, "id=abc")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNewLogger_CreatesFile(t *testing.T) {
	path := t.TempDir() + "/nested/clockwall.log"
	logger, closer, err := NewLogger(path, slog.LevelDebug)
	require.NoError(t, err)
	logger.Info("started")
	require.NoError(t, closer.Close())
}

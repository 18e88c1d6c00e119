package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/innkeeper/middleware"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newLogger(buf *syncBuffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		level  string
	}{
		{"success at info", http.StatusOK, "level=INFO"},
		{"client error at warn", http.StatusNotFound, "level=WARN"},
		{"server error at error", http.StatusInternalServerError, "level=ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf syncBuffer
			h := middleware.RequestID(middleware.Logging(newLogger(&buf))(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte("body"))
				}),
			))

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/inn/1", nil))

			out := buf.String()
			assert.Contains(t, out, tt.level)
			assert.Contains(t, out, "msg=\"request completed\"")
			assert.Contains(t, out, "method=POST")
			assert.Contains(t, out, "path=/inn/1")
			assert.Contains(t, out, "bytes=4")
			assert.Contains(t, out, "request_id="+w.Header().Get("X-Request-ID"))
		})
	}
}

func TestLoggingSkipAndRedaction(t *testing.T) {
	t.Parallel()

	t.Run("skip", func(t *testing.T) {
		t.Parallel()

		var buf syncBuffer
		mw := middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: newLogger(&buf),
			Skip:   func(r *http.Request) bool { return r.URL.Path == "/health/live" },
		})
		mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
			ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", nil))
		assert.Empty(t, buf.String())
	})

	t.Run("redacts sensitive headers", func(t *testing.T) {
		t.Parallel()

		var buf syncBuffer
		mw := middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger:     newLogger(&buf),
			LogHeaders: true,
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Cookie", "session=secret")
		mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
			ServeHTTP(httptest.NewRecorder(), req)

		assert.NotContains(t, buf.String(), "secret")
		assert.Contains(t, buf.String(), "[REDACTED]")
	})
}

func TestLoggingReferer(t *testing.T) {
	t.Parallel()

	var buf syncBuffer
	req := httptest.NewRequest(http.MethodGet, "/inn/2", nil)
	req.Header.Set("Referer", `"https://example.com/inn/1"`)

	middleware.Logging(newLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "referer=https://example.com/inn/1")
}

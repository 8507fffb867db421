package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"carecorner/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveThrough(t *testing.T, m *LoggerMiddleware, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/posts?page=2", nil), rec)

	require.NoError(t, m.Handle(h)(c))

	return rec
}

func TestLoggerMiddleware_DebugLogsEveryRequest(t *testing.T) {
	var logs bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&logs, nil)), cfg)

	serveThrough(t, m, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	out := logs.String()
	assert.Contains(t, out, "HTTP request")
	assert.Contains(t, out, "path=/api/posts")
	assert.Contains(t, out, "page=2")
	assert.Contains(t, out, "status=200")
}

func TestLoggerMiddleware_QuietOutsideDebug(t *testing.T) {
	var logs bytes.Buffer
	m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&logs, nil)), &config.Config{})

	serveThrough(t, m, func(c echo.Context) error {
		return c.NoContent(http.StatusNotFound)
	})
	assert.Empty(t, logs.String())

	rec := serveThrough(t, m, func(echo.Context) error {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "down")
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "status=503")
}

package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestGetRequestID_GeneratesOnce(t *testing.T) {
	c := newEchoContext()

	first := GetRequestID(c)
	assert.Len(t, first, 36)
	assert.Equal(t, first, GetRequestID(c))
}

func TestGetRequestID_FallsBackToRequestContext(t *testing.T) {
	c := newEchoContext()
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "ctx-id")))

	assert.Equal(t, "ctx-id", GetRequestID(c))
}

func TestAttach(t *testing.T) {
	c := newEchoContext()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := Attach(c, "req-9", logger)

	assert.Equal(t, "req-9", GetRequestID(c))
	assert.Equal(t, "req-9", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLogger(ctx))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With("request_id", "x")

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

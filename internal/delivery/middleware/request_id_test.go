package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "carecorner/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_PropagatesHeaderAndLogger(t *testing.T) {
	var logs bytes.Buffer
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Process(func(c echo.Context) error {
		ctx := c.Request().Context()
		assert.Equal(t, "abc-123", deliverycontext.GetRequestIDFromContext(ctx))

		logger := deliverycontext.GetLogger(ctx)
		require.NotNil(t, logger)
		logger.Info("inside handler")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "abc-123", deliverycontext.GetRequestID(c))
	assert.Contains(t, logs.String(), "request_id=abc-123")
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	m := NewRequestIDMiddleware(slog.Default())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, m.Process(func(echo.Context) error { return nil })(c))
	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestRequestIDMiddleware_ReplacesUnsafeID(t *testing.T) {
	m := NewRequestIDMiddleware(slog.Default())

	for name, header := range map[string]string{
		"newline":  "abc\nforged=1",
		"space":    "abc def",
		"too long": strings.Repeat("a", maxRequestIDLength+1),
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header[deliverycontext.HeaderXRequestID] = []string{header}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			require.NoError(t, m.Process(func(echo.Context) error { return nil })(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEqual(t, header, got)
			assert.Len(t, got, 36)
		})
	}
}

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("trace-123"))
	assert.True(t, validRequestID("01HZX.svc:42_a"))
	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID("id;drop"))
}

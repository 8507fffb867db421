// Package context carries per-request values between the HTTP layer and the
// use cases: the request ID echoed in X-Request-Id and response meta, and a
// logger already tagged with that ID.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from requests and always set on responses.
const HeaderXRequestID = "X-Request-Id"

// echoRequestIDKey is the echo.Context store key for the request ID.
const echoRequestIDKey = "request_id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// Attach records requestID on c and returns a copy of the request context that
// carries both the ID and logger. The caller installs it with c.SetRequest.
func Attach(c echo.Context, requestID string, logger *slog.Logger) context.Context {
	SetRequestID(c, requestID)

	ctx := WithRequestID(c.Request().Context(), requestID)
	if logger != nil {
		ctx = WithLogger(ctx, logger)
	}

	return ctx
}

// GetRequestID returns the ID bound to c. A request that never went through
// the request ID middleware gets a fresh UUID, remembered on c so the header
// and response meta agree.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		SetRequestID(c, id)

		return id
	}

	id := uuid.NewString()
	SetRequestID(c, id)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns "" outside of an HTTP request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault is GetLogger with a fallback for background work.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

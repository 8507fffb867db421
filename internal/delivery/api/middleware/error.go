package middleware

import (
	"log/slog"
	"net/http"

	"carecorner/internal/delivery/api/response"
	deliverycontext "carecorner/internal/delivery/context"
	domainerrors "carecorner/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const codeHTTPError = "HTTP_ERROR"

// ErrorMiddleware is the echo HTTPErrorHandler. It renders every error in the
// API error envelope; causes of 5xx responses go to the log only.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code, message := describe(err)
	if status >= http.StatusInternalServerError {
		m.logUnexpected(c, err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}

	_ = response.Error(c, status, code, message, nil)
}

// describe maps err to the status, code and message a client may see.
func describe(err error) (status int, code, message string) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.StatusFor(appErr.Kind()), appErr.ErrorCode(), appErr.Message()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		if httpErr.Code == http.StatusNotFound {
			return httpErr.Code, domainerrors.ErrNotFound.ErrorCode(), msg
		}

		return httpErr.Code, codeHTTPError, msg
	}

	internal := domainerrors.ErrInternalError

	return http.StatusInternalServerError, internal.ErrorCode(), internal.Message()
}

func (m *ErrorMiddleware) logUnexpected(c echo.Context, err error) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).LogAttrs(req.Context(), slog.LevelError, "Request failed",
		slog.Any("error", err),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)
}

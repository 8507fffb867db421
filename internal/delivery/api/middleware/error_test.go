package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"carecorner/internal/delivery/api/response"
	domainerrors "carecorner/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, logger *slog.Logger, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/posts", nil), rec)

	NewErrorMiddleware(logger).HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError_MapsKindsToStatus(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domainerrors.ErrValidationFailed, http.StatusBadRequest, "VALIDATION_FAILED"},
		{domainerrors.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{domainerrors.ErrDuplicateEmail, http.StatusConflict, "EMAIL_ALREADY_EXISTS"},
		{domainerrors.ErrPostNotFound, http.StatusNotFound, "POST_NOT_FOUND"},
		{domainerrors.ErrLoginFailed, http.StatusInternalServerError, "LOGIN_FAILED"},
		{errors.Wrap(domainerrors.ErrPostNotFound, "handler"), http.StatusNotFound, "POST_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec, body := handle(t, logger, tt.err)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestHandleHTTPError_InternalCauseIsLoggedNotReturned(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	err := domainerrors.ErrCreatePostFailed.WithCause(errors.New("pq: password authentication failed"))

	rec, body := handle(t, logger, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to create post", body.Error.Message)
	assert.Nil(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "password authentication")
	assert.Contains(t, logs.String(), "password authentication")
}

func TestHandleHTTPError_UnclassifiedError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rec, body := handle(t, logger, errors.New("nil pointer somewhere"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "nil pointer")
}

func TestHandleHTTPError_EchoErrors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rec, body := handle(t, logger, echo.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)

	rec, body = handle(t, logger, echo.NewHTTPError(http.StatusRequestEntityTooLarge))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, http.StatusText(http.StatusRequestEntityTooLarge), body.Error.Message)
}

func TestHandleHTTPError_HeadAndCommitted(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()

	rec := httptest.NewRecorder()
	m.HandleHTTPError(domainerrors.ErrPostNotFound, e.NewContext(httptest.NewRequest(http.MethodHead, "/api/posts/9", nil), rec))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/posts", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "partial"))
	m.HandleHTTPError(errors.New("late failure"), c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

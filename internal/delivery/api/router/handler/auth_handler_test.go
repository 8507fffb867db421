package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	domainerrors "carecorner/internal/domain/errors"
	mockUsecase "carecorner/internal/mocks/usecase"
	"carecorner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{
		AuthUC: authUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	e := newTestEcho()
	e.POST("/api/register", h.Register)
	e.POST("/api/login", h.Login)

	return e, authUC
}

func TestAuthHandler_Register(t *testing.T) {
	e, authUC := setupAuthHandler(t)

	authUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "s3cret"}).
		Return(&usecase.AuthOutput{UserID: 1, Name: "Ada"}, nil)

	rec := doRequest(e, http.MethodPost, "/api/register", `{"name":"Ada","email":"ada@example.com","password":"s3cret"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var out usecase.AuthOutput
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, usecase.AuthOutput{UserID: 1, Name: "Ada"}, out)
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e, _ := setupAuthHandler(t)

	rec := doRequest(e, http.MethodPost, "/api/register", `{"name":"Ada"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "Missing required fields", env.Error.Message)
	assert.ElementsMatch(t, []string{"email", "password"}, env.Error.Details)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	e, authUC := setupAuthHandler(t)

	authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrDuplicateEmail)

	rec := doRequest(e, http.MethodPost, "/api/register", `{"name":"Ada","email":"ada@example.com","password":"s3cret"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already exists", decode(t, rec).Error.Message)
}

func TestAuthHandler_Register_MalformedJSON(t *testing.T) {
	e, _ := setupAuthHandler(t)

	rec := doRequest(e, http.MethodPost, "/api/register", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	e, authUC := setupAuthHandler(t)

	authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "s3cret"}).
		Return(&usecase.AuthOutput{UserID: 1, Name: "Ada"}, nil)

	rec := doRequest(e, http.MethodPost, "/api/login", `{"email":"ada@example.com","password":"s3cret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":1,"name":"Ada"}`, string(decode(t, rec).Data))
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e, authUC := setupAuthHandler(t)

	authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := doRequest(e, http.MethodPost, "/api/login", `{"email":"ada@example.com","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decode(t, rec).Error.Message)
}

func TestAuthHandler_Login_MalformedStoredHash(t *testing.T) {
	e, authUC := setupAuthHandler(t)

	authUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrMalformedHash.WithDetails("unrecognized hash encoding"))

	rec := doRequest(e, http.MethodPost, "/api/login", `{"email":"ada@example.com","password":"x"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "Login failed", env.Error.Message)
	assert.Empty(t, env.Error.Details)
}

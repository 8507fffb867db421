package handler

import (
	"strconv"

	"carecorner/internal/delivery/api/response"
	"carecorner/internal/delivery/api/validator"
	domainerrors "carecorner/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// validationFailed reports the missing fields using the domain validation error.
func validationFailed(c echo.Context, err error) error {
	var details any
	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		details = validationErr.Fields
	}

	return response.BadRequestWithDetails(c,
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(),
		details,
	)
}

// postIDParam parses the :id path parameter. Anything that is not a positive
// integer cannot name a post.
func postIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrPostNotFound
	}

	return id, nil
}

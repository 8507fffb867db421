package impl

import (
	domainerrors "carecorner/internal/domain/errors"

	"github.com/pkg/errors"
)

// classify keeps errors that already carry a business classification and
// reports everything else as fallback, with the original error as its cause.
func classify(err error, fallback *domainerrors.BaseError) error {
	if err == nil {
		return nil
	}

	var classified *domainerrors.BaseError
	if errors.As(err, &classified) {
		return err
	}

	return fallback.WithCause(err)
}

package service

import (
	"errors"
	"fmt"

	apperrors "teamwork-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validationError converts a validator failure into the shared error
// taxonomy so callers can map it to a client error instead of a server one.
func validationError(err error) error {
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		f := fields[0]
		return apperrors.NewValidationError(f.Field(), fmt.Sprintf("failed on the '%s' rule", f.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

package service

import (
	"errors"
	"fmt"

	apperrors "github.com/Matias222/d-melo/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validationError converts a validator failure into the caller-visible
// ValidationError class so handlers map it to 400 instead of 500
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return &apperrors.ValidationError{
			Field:   first.Field(),
			Message: fmt.Sprintf("failed on the '%s' rule", first.Tag()),
		}
	}
	return &apperrors.ValidationError{Message: err.Error()}
}

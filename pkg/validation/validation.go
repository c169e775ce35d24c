package validation

import (
	"fmt"
	"strings"
	"time"

	"go-reskilling-backend/pkg/apperror"
)

// RequiredString rejects null-ish strings: empty and whitespace-only
// values are both treated as absent.
func RequiredString(field, value string) *apperror.AppError {
	if strings.TrimSpace(value) == "" {
		return apperror.Validation(fmt.Sprintf("The field %s is required.", field))
	}
	return nil
}

// RequiredTime rejects the zero time, which is what an omitted JSON date
// decodes to.
func RequiredTime(field string, value time.Time) *apperror.AppError {
	if value.IsZero() {
		return apperror.Validation(fmt.Sprintf("The field %s is required.", field))
	}
	return nil
}

// IntBetween range-checks an integer field inclusively on both ends.
func IntBetween(message string, value, min, max int) *apperror.AppError {
	if value < min || value > max {
		return apperror.Validation(message)
	}
	return nil
}

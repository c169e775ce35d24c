package usecase

import (
	"errors"

	"go-reskilling-backend/pkg/apperror"
)

// storeErr passes typed domain errors through untouched and wraps
// everything else as an opaque store failure.
func storeErr(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Store(err)
}

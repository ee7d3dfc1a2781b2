// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	validatorpkg "github.com/go-playground/validator/v10"

	domainerrors "clubhub/internal/domain/errors"
)

// EchoValidator wraps a validator instance for use as echo.Validator.
type EchoValidator struct {
	validate *validatorpkg.Validate
}

// New creates a request validator.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validatorpkg.New(validatorpkg.WithRequiredStructEnabled()),
	}
}

// Validate validates the given request struct. Validation failures are
// surfaced as the shared validation error so the error handler maps them to a
// 400 response.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}

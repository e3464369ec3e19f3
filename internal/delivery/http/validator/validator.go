// Package validator wires go-playground/validator into Echo's request
// validation hook.
package validator

import (
	domainerrors "inkwell/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts validator.Validate to echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a request validator with struct-tag validation enabled.
func New() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Tag failures surface as the domain's
// validation error so the error handler renders a 400 envelope.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}

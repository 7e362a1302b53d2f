// Package validator adapts go-playground/validator to Echo's request
// validation hook.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// EchoValidator implements echo.Validator on top of a shared validate
// instance.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate checks struct tags on the bound request.
func (v *EchoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

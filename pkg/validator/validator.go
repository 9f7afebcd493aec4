package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound requests.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator ready to be installed on an echo instance.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks i against its struct tags.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validate.Struct(i)
}

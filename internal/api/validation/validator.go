package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// New returns a validator with the site's custom rules registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("email", validateEmail)
}

// validateEmail checks if the email is valid
func validateEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// ValidationError represents a validation error
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// FormatValidationError formats validation errors into a user-friendly response
func FormatValidationError(err error) []ValidationError {
	var errs []ValidationError
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			errs = append(errs, ValidationError{
				Field: e.Field(),
				Tag:   e.Tag(),
				Value: e.Param(),
			})
		}
	}
	return errs
}

package booking

import (
	"strings"

	"zellige/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateBooking checks a canonical record against the full schema and maps
// violations to field-level messages.
func validateBooking(rec models.Booking) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Fields: map[string]string{"payload": err.Error()}}
	}

	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			fields[field] = field + " is required"
		case "email":
			fields[field] = field + " must be a valid email address"
		case "min":
			fields[field] = field + " must be at least " + e.Param() + " characters"
		case "max":
			fields[field] = field + " must be at most " + e.Param() + " characters"
		case "datetime":
			fields[field] = field + " must match format " + e.Param()
		default:
			fields[field] = field + " is invalid"
		}
	}
	return &ValidationError{Fields: fields}
}

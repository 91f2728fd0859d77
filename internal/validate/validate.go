// Package validate provides input validation utilities for pulsectl,
// ensuring malformed flags and resource names are rejected before any
// network call is made.
//
// Implements validation rules for resource names, API base URLs, and CLI
// configuration parameters using the go-playground/validator library for
// standardized validation behavior.
//
// VALIDATION COVERAGE:
//   - Resource Names: Format validation for region, location, and room names
//   - Base URL: API endpoint format validation
//   - Configuration: Timeout, rate, and retry parameter validation
//
// Used by CLI flag processing and command handlers to ensure consistent
// input validation across all entry points.
package validate

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	// Using built-in validators: url, min, max, required - no custom registration needed
}

// ValidateField validates individual values against specified validation
// rules using the validator library's tag syntax.
//
// Example: ValidateField(rate, "required,min=1,max=14")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidateRequiredString validates that a string field is not empty.
// Prevents runtime failures from missing essential configuration such as
// the organization ID or bearer token.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidatePositiveTimeout validates that a timeout duration is positive (> 0).
// Ensures HTTP timeout configuration doesn't cause infinite waits or
// immediate failures.
func ValidatePositiveTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}

// ValidateBaseURL validates that an API base URL is well-formed. Catches
// --api flag typos before the first request instead of surfacing them as
// confusing connection errors.
func ValidateBaseURL(raw string) error {
	if err := ValidateField(raw, "required,url"); err != nil {
		return fmt.Errorf("invalid base URL '%s' - expected format: https://host", raw)
	}
	return nil
}

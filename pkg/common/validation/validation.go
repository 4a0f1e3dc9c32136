// Package validation provides common validation utilities for the atomicdbg library.
package validation

import (
	"fmt"

	adberrors "github.com/vnykmshr/atomicdbg/pkg/common/errors"
)

// ValidatePositive validates that an integer value is positive (> 0).
// Returns a ValidationError if the value is not positive.
func ValidatePositive(module, field string, value int) error {
	if value <= 0 {
		return adberrors.NewValidationError(module, field, value, "must be positive").
			WithHint("value must be greater than 0")
	}
	return nil
}

// ValidateRange validates that min <= value <= max.
// Returns a ValidationError naming the violated bound.
func ValidateRange(module, field string, value, min, max int) error {
	if value < min {
		return adberrors.NewValidationError(module, field, value, fmt.Sprintf("must be at least %d", min)).
			WithHint(fmt.Sprintf("use a value between %d and %d", min, max))
	}
	if value > max {
		return adberrors.NewValidationError(module, field, value, fmt.Sprintf("must be at most %d", max)).
			WithHint(fmt.Sprintf("use a value between %d and %d", min, max))
	}
	return nil
}

// ValidateNotEmpty validates that a string value is not empty.
// Returns a ValidationError if the string is empty.
func ValidateNotEmpty(module, field string, value string) error {
	if value == "" {
		return adberrors.NewValidationError(module, field, value, "cannot be empty").
			WithHint("provide a non-empty " + field)
	}
	return nil
}

// Package validation provides common validation utilities for configuration
// parameters across the atomicdbg library.
//
// The helpers return *errors.ValidationError values so that callers get
// consistent messages and can test for errors.ErrInvalidConfiguration.
package validation

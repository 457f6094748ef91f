package company

import "errors"

var (
	// ErrCompanyNotFound indicates the company doesn't exist.
	ErrCompanyNotFound = errors.New("company not found")
	// ErrInvalidInput indicates invalid company input.
	ErrInvalidInput = errors.New("invalid company input")
)

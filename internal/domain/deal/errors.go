package deal

import "errors"

var (
	// ErrDealNotFound indicates the deal doesn't exist.
	ErrDealNotFound = errors.New("deal not found")
	// ErrInvalidInput indicates invalid deal input.
	ErrInvalidInput = errors.New("invalid deal input")
)

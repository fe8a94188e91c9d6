package domain

import "errors"

// Error kinds shared by every operation. Callers wrap them with context
// and the transport layer maps them with errors.Is.
var (
	ErrValidation        = errors.New("validation failed")
	ErrAuthorization     = errors.New("not authorized")
	ErrNotFound          = errors.New("not found")
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConflict          = errors.New("conflict")
	ErrAggregation       = errors.New("aggregation failed")
)

package domain

import "errors"

// Sentinel errors used across all layers.
var (
	// ErrNotFound is the single failure outcome of a lookup, whatever the cause.
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

package service

import "errors"

// Core error taxonomy. All are user-correctable: the caller fixes the input
// and resubmits; nothing is retried automatically.
var (
	ErrUnknownFood     = errors.New("food not found in catalog")
	ErrUnsupportedUnit = errors.New("unsupported unit for food")
	ErrNonPositiveMass = errors.New("conversion produced non-positive mass")
	ErrNoProfile       = errors.New("user profile is not set")
)

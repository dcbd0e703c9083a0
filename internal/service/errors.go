package service

import "errors"

// Sentinel errors surfaced to the API layer. Handlers map these onto HTTP
// status codes; everything else is reported as a generic upstream failure.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
)

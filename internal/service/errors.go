package service

import "errors"

// Sentinel errors shared by every entity service. Handlers translate
// these into HTTP statuses; anything else bubbles up as a store
// failure.
var (
	ErrIDRequired    = errors.New("id is required")
	ErrNotFound      = errors.New("resource not found")
	ErrMissingFields = errors.New("missing required fields")
)

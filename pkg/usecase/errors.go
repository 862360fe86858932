package usecase

import "errors"

// Sentinel errors for the use case layer. Validation-class errors map to
// HTTP 400 in the controller; everything else is a 500.
var (
	ErrMissingField = errors.New("missing required field")
	ErrNoReviews    = errors.New("no reviews to analyze, collect reviews first")
	ErrEmptyText    = errors.New("text is required")
	ErrNoAdapters   = errors.New("no source adapters configured")
)

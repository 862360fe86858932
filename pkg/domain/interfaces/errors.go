package interfaces

import "errors"

// Sentinel errors shared across repository and adapter implementations
var (
	// ErrSessionNotFound is returned when no session exists for an ID
	ErrSessionNotFound = errors.New("session not found")

	// ErrSourceNotFound is returned by adapters when a business cannot be
	// resolved on a platform. Callers treat it as "skip this source".
	ErrSourceNotFound = errors.New("business not found on source platform")
)

package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// SessionID identifies one analysis session (a registered business and its
// collected reviews)
type SessionID string

// NewSessionID generates a new random session ID
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// String returns the string representation of the session ID
func (id SessionID) String() string {
	return string(id)
}

// Validate checks if the session ID is a well-formed UUID
func (id SessionID) Validate() error {
	if id == "" {
		return goerr.New("session ID is empty")
	}
	if _, err := uuid.Parse(string(id)); err != nil {
		return goerr.Wrap(err, "invalid session ID", goerr.V("id", string(id)))
	}
	return nil
}

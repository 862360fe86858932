package interfaces

import (
	"context"

	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
)

// Repository defines the interface for session persistence
type Repository interface {
	Session() SessionRepository
	Close() error
}

// SessionRepository defines the interface for Session data access
type SessionRepository interface {
	// Put stores a session, overwriting any existing session with the same ID
	Put(ctx context.Context, s *model.Session) error

	// Get retrieves a session by ID. Returns ErrSessionNotFound when absent.
	Get(ctx context.Context, id types.SessionID) (*model.Session, error)

	// Delete removes a session by ID. Returns ErrSessionNotFound when absent.
	Delete(ctx context.Context, id types.SessionID) error

	// List retrieves all sessions ordered by creation time, newest first
	List(ctx context.Context) ([]*model.Session, error)
}

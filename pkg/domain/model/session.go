package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
)

// Session holds one registered business and the reviews collected for it.
// All pipeline state is scoped to a session and threaded through calls
// explicitly, never held as process-wide mutable state.
type Session struct {
	ID           types.SessionID `json:"id"`
	BusinessName string          `json:"business_name"`
	Location     string          `json:"location"`
	AppName      string          `json:"app_name"`
	Domain       string          `json:"domain"`
	Language     string          `json:"language"`
	Reviews      []*Review       `json:"reviews"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewSession creates a session for a registered business. Language defaults
// to French, matching the markets the source adapters query.
func NewSession(businessName, location, appName, domain string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:           types.NewSessionID(),
		BusinessName: businessName,
		Location:     location,
		AppName:      appName,
		Domain:       domain,
		Language:     "fr",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Validate checks required session fields
func (s *Session) Validate() error {
	if err := s.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid session")
	}
	if s.BusinessName == "" {
		return goerr.New("business name is required")
	}
	for _, r := range s.Reviews {
		if err := r.Validate(); err != nil {
			return goerr.Wrap(err, "invalid review in session", goerr.V("sessionID", s.ID))
		}
	}
	return nil
}

// AddReviews appends collected reviews to the session
func (s *Session) AddReviews(reviews ...*Review) {
	s.Reviews = append(s.Reviews, reviews...)
	s.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	copied := *s
	if s.Reviews != nil {
		copied.Reviews = make([]*Review, len(s.Reviews))
		for i, r := range s.Reviews {
			copied.Reviews[i] = r.Clone()
		}
	}
	return &copied
}

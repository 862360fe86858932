package memory

import (
	"github.com/reviewsight-lab/reviewsight/pkg/domain/interfaces"
)

// Memory is an in-memory repository, intended for development and tests
type Memory struct {
	session *sessionRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		session: newSessionRepository(),
	}
}

func (m *Memory) Session() interfaces.SessionRepository {
	return m.session
}

func (m *Memory) Close() error {
	return nil
}

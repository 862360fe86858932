package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
)

// RegisterCompanyInput represents input for registering a business
type RegisterCompanyInput struct {
	Name     string
	Location string
	AppName  string
	Domain   string
}

// Validate checks that all registration fields are present
func (i *RegisterCompanyInput) Validate() error {
	missing := []string{}
	if i.Name == "" {
		missing = append(missing, "name")
	}
	if i.Location == "" {
		missing = append(missing, "location")
	}
	if i.AppName == "" {
		missing = append(missing, "app_name")
	}
	if i.Domain == "" {
		missing = append(missing, "domain")
	}
	if len(missing) > 0 {
		return goerr.Wrap(ErrMissingField, "registration is incomplete", goerr.V("missing", missing))
	}
	return nil
}

// RegisterCompany creates a new analysis session for a business. Each
// registration gets its own session so concurrent analyses never interfere.
func (uc *UseCases) RegisterCompany(ctx context.Context, input RegisterCompanyInput) (*model.Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s := model.NewSession(input.Name, input.Location, input.AppName, input.Domain)

	if err := uc.repo.Session().Put(ctx, s); err != nil {
		return nil, goerr.Wrap(err, "failed to store session")
	}

	return s, nil
}

// GetSession retrieves a session by ID
func (uc *UseCases) GetSession(ctx context.Context, id types.SessionID) (*model.Session, error) {
	return uc.repo.Session().Get(ctx, id)
}

// DeleteSession removes a session and its collected reviews
func (uc *UseCases) DeleteSession(ctx context.Context, id types.SessionID) error {
	return uc.repo.Session().Delete(ctx, id)
}

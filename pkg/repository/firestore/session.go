package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/interfaces"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type sessionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newSessionRepository(client *firestore.Client) *sessionRepository {
	return &sessionRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *sessionRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_sessions"
	}
	return "sessions"
}

func (r *sessionRepository) Put(ctx context.Context, s *model.Session) error {
	if err := s.Validate(); err != nil {
		return goerr.Wrap(err, "invalid session")
	}

	_, err := r.client.Collection(r.collection()).Doc(s.ID.String()).Set(ctx, s)
	if err != nil {
		return goerr.Wrap(err, "failed to put session", goerr.V("sessionID", s.ID))
	}

	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id types.SessionID) (*model.Session, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrSessionNotFound, "session not found", goerr.V("sessionID", id))
		}
		return nil, goerr.Wrap(err, "failed to get session", goerr.V("sessionID", id))
	}

	var s model.Session
	if err := docSnap.DataTo(&s); err != nil {
		return nil, goerr.Wrap(err, "failed to decode session", goerr.V("sessionID", id))
	}

	return &s, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id types.SessionID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	// Firestore deletes are idempotent, so check existence first to keep
	// the not-found contract of the interface
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(interfaces.ErrSessionNotFound, "session not found", goerr.V("sessionID", id))
		}
		return goerr.Wrap(err, "failed to check session", goerr.V("sessionID", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete session", goerr.V("sessionID", id))
	}

	return nil
}

func (r *sessionRepository) List(ctx context.Context) ([]*model.Session, error) {
	iter := r.client.Collection(r.collection()).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var result []*model.Session
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate sessions")
		}

		var s model.Session
		if err := docSnap.DataTo(&s); err != nil {
			return nil, goerr.Wrap(err, "failed to decode session", goerr.V("doc", docSnap.Ref.ID))
		}
		result = append(result, &s)
	}

	return result, nil
}

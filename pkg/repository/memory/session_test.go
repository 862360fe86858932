package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/interfaces"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/repository/memory"
)

func TestSessionRepository(t *testing.T) {
	t.Run("Put and Get round-trips a session", func(t *testing.T) {
		repo := memory.New()
		ctx := context.Background()

		s := model.NewSession("Cafe Lumiere", "Paris", "Lumiere App", "cafelumiere.fr")
		gt.NoError(t, repo.Session().Put(ctx, s)).Required()

		got, err := repo.Session().Get(ctx, s.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.ID).Equal(s.ID)
		gt.Value(t, got.BusinessName).Equal("Cafe Lumiere")
		gt.Value(t, got.Language).Equal("fr")
	})

	t.Run("Get returns ErrSessionNotFound for unknown ID", func(t *testing.T) {
		repo := memory.New()
		ctx := context.Background()

		s := model.NewSession("A", "B", "C", "d.com")
		_, err := repo.Session().Get(ctx, s.ID)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrSessionNotFound)).True()
	})

	t.Run("stored session is isolated from caller mutation", func(t *testing.T) {
		repo := memory.New()
		ctx := context.Background()

		s := model.NewSession("Cafe Lumiere", "Paris", "Lumiere App", "cafelumiere.fr")
		gt.NoError(t, repo.Session().Put(ctx, s)).Required()

		s.AddReviews(&model.Review{ID: "r1", Rating: 5})

		got, err := repo.Session().Get(ctx, s.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, got.Reviews).Length(0)
	})

	t.Run("Delete removes the session", func(t *testing.T) {
		repo := memory.New()
		ctx := context.Background()

		s := model.NewSession("Cafe Lumiere", "Paris", "Lumiere App", "cafelumiere.fr")
		gt.NoError(t, repo.Session().Put(ctx, s)).Required()
		gt.NoError(t, repo.Session().Delete(ctx, s.ID)).Required()

		_, err := repo.Session().Get(ctx, s.ID)
		gt.Bool(t, errors.Is(err, interfaces.ErrSessionNotFound)).True()
	})

	t.Run("Delete of unknown session fails", func(t *testing.T) {
		repo := memory.New()
		ctx := context.Background()

		err := repo.Session().Delete(ctx, model.NewSession("A", "B", "C", "d.com").ID)
		gt.Bool(t, errors.Is(err, interfaces.ErrSessionNotFound)).True()
	})

	t.Run("List returns all sessions", func(t *testing.T) {
		repo := memory.New()
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			s := model.NewSession("Business", "Paris", "App", "b.com")
			gt.NoError(t, repo.Session().Put(ctx, s)).Required()
		}

		sessions, err := repo.Session().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, sessions).Length(3)
	})
}

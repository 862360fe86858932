package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
)

func TestReviewValidate(t *testing.T) {
	valid := model.Review{
		ID:       "google_0",
		Platform: types.PlatformGoogle,
		Rating:   4,
	}
	gt.NoError(t, valid.Validate())

	t.Run("rating outside 1..5 fails", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			r := valid
			r.Rating = rating
			gt.Error(t, r.Validate())
		}
	})

	t.Run("missing ID fails", func(t *testing.T) {
		r := valid
		r.ID = ""
		gt.Error(t, r.Validate())
	})

	t.Run("unknown platform fails", func(t *testing.T) {
		r := valid
		r.Platform = "yelp"
		gt.Error(t, r.Validate())
	})
}

func TestReviewClone(t *testing.T) {
	r := &model.Review{
		ID: "r1", Platform: types.PlatformGoogle, Rating: 4,
		Topics: []string{"accueil"},
	}

	clone := r.Clone()
	clone.Topics[0] = "changed"
	clone.Rating = 1

	gt.Value(t, r.Topics[0]).Equal("accueil")
	gt.Value(t, r.Rating).Equal(4)
}

func TestSessionClone(t *testing.T) {
	s := model.NewSession("Cafe Lumiere", "Paris", "Lumiere App", "cafelumiere.fr")
	s.AddReviews(&model.Review{ID: "r1", Platform: types.PlatformGoogle, Rating: 5})

	clone := s.Clone()
	clone.Reviews[0].Rating = 1
	clone.AddReviews(&model.Review{ID: "r2", Platform: types.PlatformGoogle, Rating: 3})

	gt.Value(t, s.Reviews[0].Rating).Equal(5)
	gt.Array(t, s.Reviews).Length(1)
}

func TestInsightReportValidate(t *testing.T) {
	full := model.InsightReport{
		Summary:         "ok",
		Strengths:       []string{"a"},
		Improvements:    []string{"b"},
		Recommendations: []string{"c"},
		Trends:          []string{"d"},
	}
	gt.NoError(t, full.Validate())

	empty := full
	empty.Trends = nil
	gt.Error(t, empty.Validate())

	noSummary := full
	noSummary.Summary = ""
	gt.Error(t, noSummary.Validate())
}

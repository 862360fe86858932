package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
)

func TestSentimentFromRuleScore(t *testing.T) {
	gt.Value(t, types.SentimentFromRuleScore(0.5)).Equal(types.SentimentPositive)
	gt.Value(t, types.SentimentFromRuleScore(-0.5)).Equal(types.SentimentNegative)
	gt.Value(t, types.SentimentFromRuleScore(0)).Equal(types.SentimentNeutral)

	// Thresholds are exclusive at +/-0.2
	gt.Value(t, types.SentimentFromRuleScore(0.2)).Equal(types.SentimentNeutral)
	gt.Value(t, types.SentimentFromRuleScore(-0.2)).Equal(types.SentimentNeutral)
	gt.Value(t, types.SentimentFromRuleScore(0.21)).Equal(types.SentimentPositive)
	gt.Value(t, types.SentimentFromRuleScore(-0.21)).Equal(types.SentimentNegative)
}

func TestSentimentFromModelScore(t *testing.T) {
	gt.Value(t, types.SentimentFromModelScore(0.9)).Equal(types.SentimentPositive)
	gt.Value(t, types.SentimentFromModelScore(0.7)).Equal(types.SentimentPositive)
	gt.Value(t, types.SentimentFromModelScore(0.5)).Equal(types.SentimentNeutral)
	gt.Value(t, types.SentimentFromModelScore(0.3)).Equal(types.SentimentNegative)
	gt.Value(t, types.SentimentFromModelScore(0.1)).Equal(types.SentimentNegative)
}

func TestTierForRating(t *testing.T) {
	gt.Value(t, types.TierForRating(4.5)).Equal(types.RatingTierHigh)
	gt.Value(t, types.TierForRating(4.0)).Equal(types.RatingTierHigh)
	gt.Value(t, types.TierForRating(3.9)).Equal(types.RatingTierMid)
	gt.Value(t, types.TierForRating(3.0)).Equal(types.RatingTierMid)
	gt.Value(t, types.TierForRating(2.9)).Equal(types.RatingTierLow)
	gt.Value(t, types.TierForRating(1.0)).Equal(types.RatingTierLow)
}

func TestParsePlatform(t *testing.T) {
	p, err := types.ParsePlatform("google")
	gt.NoError(t, err)
	gt.Value(t, p).Equal(types.PlatformGoogle)
	gt.Value(t, p.DisplayName()).Equal("Google Reviews")

	_, err = types.ParsePlatform("yelp")
	gt.Error(t, err)
}

func TestAllPlatformsExcludesSimulated(t *testing.T) {
	for _, p := range types.AllPlatforms() {
		gt.Value(t, p).NotEqual(types.PlatformSimulated)
	}
}

func TestSessionID(t *testing.T) {
	id := types.NewSessionID()
	gt.NoError(t, id.Validate())

	gt.Error(t, types.SessionID("not-a-uuid").Validate())
	gt.Error(t, types.SessionID("").Validate())
}

func TestAllCategories(t *testing.T) {
	categories := types.AllCategories()
	gt.Array(t, categories).Length(5)
	gt.Value(t, categories[0]).Equal(types.CategoryService)
}

package analysis_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model/config"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
	"github.com/reviewsight-lab/reviewsight/pkg/service/analysis"
)

func TestRuleScorer(t *testing.T) {
	scorer := analysis.NewRuleScorer(config.DefaultLexicon())
	ctx := context.Background()

	t.Run("positive keyword majority scores +0.5", func(t *testing.T) {
		res, err := scorer.ScoreText(ctx, "Excellent service, je recommande !")
		gt.NoError(t, err).Required()
		gt.Value(t, res.Sentiment).Equal(types.SentimentPositive)
		gt.Value(t, res.Score).Equal(0.5)
		gt.Value(t, res.Confidence).Equal(0.6)
	})

	t.Run("negative keyword majority scores -0.5", func(t *testing.T) {
		res, err := scorer.ScoreText(ctx, "Service horrible, très décevant.")
		gt.NoError(t, err).Required()
		gt.Value(t, res.Sentiment).Equal(types.SentimentNegative)
		gt.Value(t, res.Score).Equal(-0.5)
	})

	t.Run("no keyword hit is neutral with low confidence", func(t *testing.T) {
		res, err := scorer.ScoreText(ctx, "Produit correct.")
		gt.NoError(t, err).Required()
		gt.Value(t, res.Sentiment).Equal(types.SentimentNeutral)
		gt.Value(t, res.Score).Equal(0.0)
		gt.Value(t, res.Confidence).Equal(0.3)
	})

	t.Run("tie between positive and negative is neutral", func(t *testing.T) {
		res, err := scorer.ScoreText(ctx, "Excellent produit mais livraison horrible")
		gt.NoError(t, err).Required()
		gt.Value(t, res.Sentiment).Equal(types.SentimentNeutral)
		gt.Value(t, res.Score).Equal(0.0)
		gt.Value(t, res.Confidence).Equal(0.6)
	})

	t.Run("keywords only match whole words", func(t *testing.T) {
		// "lent" must not count inside "excellent"
		res, err := scorer.ScoreText(ctx, "Excellent accueil")
		gt.NoError(t, err).Required()
		gt.Value(t, res.Sentiment).Equal(types.SentimentPositive)
		gt.Value(t, res.Score).Equal(0.5)

		// "top" must not count inside "stopper"
		res, err = scorer.ScoreText(ctx, "Impossible de stopper l'abonnement")
		gt.NoError(t, err).Required()
		gt.Value(t, res.Sentiment).Equal(types.SentimentNeutral)
		gt.Value(t, res.Score).Equal(0.0)
		gt.Value(t, res.Confidence).Equal(0.3)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		res, err := scorer.ScoreText(ctx, "EXCELLENT")
		gt.NoError(t, err).Required()
		gt.Value(t, res.Sentiment).Equal(types.SentimentPositive)
	})

	t.Run("same text always yields the same result", func(t *testing.T) {
		const text = "Super application, très efficace mais un peu lent parfois"
		first, err := scorer.ScoreText(ctx, text)
		gt.NoError(t, err).Required()
		for i := 0; i < 10; i++ {
			res, err := scorer.ScoreText(ctx, text)
			gt.NoError(t, err).Required()
			gt.Value(t, res).Equal(first)
		}
	})
}

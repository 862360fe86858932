package analysis

import (
	"context"

	"github.com/reviewsight-lab/reviewsight/pkg/domain/interfaces"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model/config"
)

// Engine runs the analysis pipeline over review collections: per-review
// sentiment and category labeling, then corpus-level KPI computation.
type Engine struct {
	lexicon     *config.Lexicon
	ruleScorer  *RuleScorer
	scorer      interfaces.SentimentScorer
	categorizer *Categorizer
}

type Option func(*Engine)

// WithScorer replaces the labeling scorer, typically with the model-backed
// one. The rule-based scorer remains the baseline for category statistics.
func WithScorer(scorer interfaces.SentimentScorer) Option {
	return func(e *Engine) {
		e.scorer = scorer
	}
}

// WithCategorySeed seeds the random category fallback
func WithCategorySeed(seed int64) Option {
	return func(e *Engine) {
		e.categorizer = NewCategorizer(e.lexicon, seed)
	}
}

// New creates an analysis engine over the lexicon. Without options the
// deterministic rule-based scorer labels reviews.
func New(lexicon *config.Lexicon, opts ...Option) *Engine {
	ruleScorer := NewRuleScorer(lexicon)
	e := &Engine{
		lexicon:     lexicon,
		ruleScorer:  ruleScorer,
		scorer:      ruleScorer,
		categorizer: NewCategorizer(lexicon, 1),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Scorer returns the scorer used for labeling
func (e *Engine) Scorer() interfaces.SentimentScorer {
	return e.scorer
}

// AnalyzeReviews attaches sentiment, score, topics, confidence and category
// to every review in place. Scoring failures degrade to the neutral result,
// so this never fails the pipeline.
func (e *Engine) AnalyzeReviews(ctx context.Context, reviews []*model.Review) {
	for _, r := range reviews {
		res, err := e.scorer.ScoreText(ctx, r.Text)
		if err != nil || res == nil {
			res = model.NeutralSentimentResult()
		}

		r.Sentiment = res.Sentiment
		r.Score = res.Score
		r.Topics = res.Topics
		r.Confidence = res.Confidence

		if r.Category == "" {
			r.Category = e.categorizer.Categorize(r.Text)
		}
	}
}

package interfaces

import (
	"context"

	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
)

// SentimentScorer scores the sentiment of one review text. Implementations
// must never fail the pipeline: a scorer that cannot analyze a text returns
// the fixed neutral result instead of an error. The error return exists for
// use outside the pipeline (ad-hoc scoring endpoints).
type SentimentScorer interface {
	ScoreText(ctx context.Context, text string) (*model.SentimentResult, error)
}

// TopicExtractor extracts the main topics discussed in a text
type TopicExtractor interface {
	ExtractTopics(ctx context.Context, text string) ([]string, error)
}

package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
)

// ScoreSentiment scores a single ad-hoc text through the configured scorer
func (uc *UseCases) ScoreSentiment(ctx context.Context, text string) (*model.SentimentResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, goerr.Wrap(ErrEmptyText, "cannot score sentiment")
	}

	return uc.engine.Scorer().ScoreText(ctx, text)
}

// ExtractTopics extracts the main topics of a single ad-hoc text. The
// operation needs an LLM-backed extractor; without one it returns an empty
// topic list.
func (uc *UseCases) ExtractTopics(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, goerr.Wrap(ErrEmptyText, "cannot extract topics")
	}

	if uc.topicExtractor == nil {
		return []string{}, nil
	}

	return uc.topicExtractor.ExtractTopics(ctx, text)
}

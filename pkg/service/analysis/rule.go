package analysis

import (
	"context"
	"strings"

	"github.com/reviewsight-lab/reviewsight/pkg/domain/interfaces"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model/config"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
)

// RuleScorer is the deterministic keyword-counting sentiment scorer. It is
// the canonical baseline: the same text and lexicon always produce the same
// result.
type RuleScorer struct {
	lexicon *config.Lexicon
}

var _ interfaces.SentimentScorer = &RuleScorer{}

// NewRuleScorer creates a rule-based scorer over the given lexicon
func NewRuleScorer(lexicon *config.Lexicon) *RuleScorer {
	return &RuleScorer{lexicon: lexicon}
}

// ScoreText counts positive and negative keyword occurrences in the
// lowercased text. Keywords match whole tokens only, so "lent" does not
// count inside "excellent". A positive majority scores +0.5, a negative
// majority -0.5, a tie 0. The label follows the +/-0.2 thresholds.
func (s *RuleScorer) ScoreText(ctx context.Context, text string) (*model.SentimentResult, error) {
	tokenCounts := make(map[string]int)
	for _, token := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		tokenCounts[token]++
	}

	var positive, negative int
	for _, kw := range s.lexicon.PositiveKeywords {
		positive += tokenCounts[kw]
	}
	for _, kw := range s.lexicon.NegativeKeywords {
		negative += tokenCounts[kw]
	}

	var score float64
	switch {
	case positive > negative:
		score = 0.5
	case negative > positive:
		score = -0.5
	}

	confidence := 0.3
	if positive+negative > 0 {
		confidence = 0.6
	}

	return &model.SentimentResult{
		Sentiment:  types.SentimentFromRuleScore(score),
		Score:      score,
		Topics:     []string{},
		Confidence: confidence,
	}, nil
}

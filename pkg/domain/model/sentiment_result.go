package model

import "github.com/reviewsight-lab/reviewsight/pkg/domain/types"

// SentimentResult is the outcome of scoring one text
type SentimentResult struct {
	Sentiment  types.Sentiment `json:"sentiment"`
	Score      float64         `json:"score"`
	Topics     []string        `json:"topics"`
	Confidence float64         `json:"confidence"`
}

// NeutralSentimentResult is the fixed fallback returned when scoring is
// impossible: neutral at 0.5 with zero confidence and no topics.
func NeutralSentimentResult() *SentimentResult {
	return &SentimentResult{
		Sentiment:  types.SentimentNeutral,
		Score:      0.5,
		Topics:     []string{},
		Confidence: 0.0,
	}
}

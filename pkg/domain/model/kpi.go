package model

import (
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
)

// KeywordScore is one extracted keyword with its normalized frequency score
type KeywordScore struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// TopicCount is one extracted topic with its occurrence count
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// CategoryStat aggregates reviews sharing a category. AvgSentiment is the
// numeric rule-based score, not a label. All values are rounded to two
// decimals.
type CategoryStat struct {
	Count        int     `json:"count"`
	AvgSentiment float64 `json:"avg_sentiment"`
	AvgRating    float64 `json:"avg_rating"`
}

// KPISummary is the aggregate computed over one review collection.
// Distributions are percentage shares; all are zero/empty for an empty
// collection.
type KPISummary struct {
	AverageRating         float64                          `json:"average_rating"`
	SentimentScore        float64                          `json:"sentiment_score"`
	ReviewCount           int                              `json:"review_count"`
	PlatformDistribution  map[string]float64               `json:"platform_distribution"`
	SentimentDistribution map[types.Sentiment]float64      `json:"sentiment_distribution"`
	TopKeywords           []KeywordScore                   `json:"top_keywords"`
	CategoryStats         map[types.Category]*CategoryStat `json:"category_stats"`
	TopTopics             []TopicCount                     `json:"top_topics"`
}

// EmptyKPISummary is the summary of an empty collection
func EmptyKPISummary() *KPISummary {
	return &KPISummary{
		PlatformDistribution:  map[string]float64{},
		SentimentDistribution: map[types.Sentiment]float64{},
		TopKeywords:           []KeywordScore{},
		CategoryStats:         map[types.Category]*CategoryStat{},
		TopTopics:             []TopicCount{},
	}
}

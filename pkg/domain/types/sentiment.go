package types

import "fmt"

// Sentiment is the label attached to a review after analysis
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// AllSentiments returns all valid sentiment labels
func AllSentiments() []Sentiment {
	return []Sentiment{
		SentimentPositive,
		SentimentNeutral,
		SentimentNegative,
	}
}

// IsValid checks if the sentiment is a known label
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	default:
		return false
	}
}

// String returns the string representation of the sentiment
func (s Sentiment) String() string {
	return string(s)
}

// SentimentFromRuleScore maps a rule-based score (-0.5, 0, +0.5) to a label.
// Thresholds are +/-0.2 so only a clear keyword majority moves the label
// away from neutral.
func SentimentFromRuleScore(score float64) Sentiment {
	switch {
	case score > 0.2:
		return SentimentPositive
	case score < -0.2:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// SentimentFromModelScore maps a model-reported 0..1 score to a label
func SentimentFromModelScore(score float64) Sentiment {
	switch {
	case score >= 0.7:
		return SentimentPositive
	case score <= 0.3:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// ParseSentiment parses a string into a Sentiment
func ParseSentiment(s string) (Sentiment, error) {
	v := Sentiment(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid sentiment: %s", s)
	}
	return v, nil
}

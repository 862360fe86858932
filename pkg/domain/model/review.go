package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
)

// Review is one normalized customer feedback record. Analysis fields
// (Category, Sentiment, Score, Topics, Confidence) stay zero until the
// review goes through the analysis engine.
type Review struct {
	ID       string         `json:"id"`
	Platform types.Platform `json:"platform"`
	Author   string         `json:"author"`
	Rating   int            `json:"rating"`
	Text     string         `json:"text"`
	Title    string         `json:"title,omitempty"`
	Date     string         `json:"date"`
	Language string         `json:"language,omitempty"`

	Category   types.Category  `json:"category,omitempty"`
	Sentiment  types.Sentiment `json:"sentiment,omitempty"`
	Score      float64         `json:"score,omitempty"`
	Topics     []string        `json:"topics,omitempty"`
	Confidence float64         `json:"confidence,omitempty"`
}

// Validate checks structural invariants of a normalized review
func (r *Review) Validate() error {
	if r.ID == "" {
		return goerr.New("review ID is required")
	}
	if !r.Platform.IsValid() {
		return goerr.New("invalid review platform", goerr.V("platform", r.Platform))
	}
	if r.Rating < 1 || r.Rating > 5 {
		return goerr.New("review rating must be between 1 and 5",
			goerr.V("id", r.ID), goerr.V("rating", r.Rating))
	}
	if r.Sentiment != "" && !r.Sentiment.IsValid() {
		return goerr.New("invalid review sentiment", goerr.V("sentiment", r.Sentiment))
	}
	if r.Category != "" && !r.Category.IsValid() {
		return goerr.New("invalid review category", goerr.V("category", r.Category))
	}
	return nil
}

// Analyzed reports whether the review carries a sentiment label
func (r *Review) Analyzed() bool {
	return r.Sentiment != ""
}

// Clone returns a deep copy of the review
func (r *Review) Clone() *Review {
	copied := *r
	if r.Topics != nil {
		copied.Topics = make([]string, len(r.Topics))
		copy(copied.Topics, r.Topics)
	}
	return &copied
}

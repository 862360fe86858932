package analysis

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
)

const (
	topKeywordCount = 10
	topTopicCount   = 5
	minTokenLength  = 4
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// Summarize computes the KPI summary over a review collection. An empty
// collection yields the zero summary.
func (e *Engine) Summarize(reviews []*model.Review) *model.KPISummary {
	if len(reviews) == 0 {
		return model.EmptyKPISummary()
	}

	summary := model.EmptyKPISummary()
	summary.ReviewCount = len(reviews)

	var ratingSum int
	for _, r := range reviews {
		ratingSum += r.Rating
	}
	summary.AverageRating = round2(float64(ratingSum) / float64(len(reviews)))

	summary.PlatformDistribution = platformDistribution(reviews)
	summary.SentimentDistribution = sentimentDistribution(reviews)
	summary.SentimentScore = summary.SentimentDistribution[types.SentimentPositive]
	summary.TopKeywords = e.extractKeywords(reviews)
	summary.CategoryStats = e.categoryStats(reviews)
	summary.TopTopics = topTopics(reviews)

	return summary
}

func platformDistribution(reviews []*model.Review) map[string]float64 {
	counts := make(map[string]int)
	for _, r := range reviews {
		counts[r.Platform.DisplayName()]++
	}

	dist := make(map[string]float64, len(counts))
	for platform, count := range counts {
		dist[platform] = round2(float64(count) / float64(len(reviews)) * 100)
	}
	return dist
}

// sentimentDistribution computes percentage shares over the reviews that
// carry a sentiment. Reviews not yet analyzed are excluded from the base.
func sentimentDistribution(reviews []*model.Review) map[types.Sentiment]float64 {
	counts := make(map[types.Sentiment]int)
	var labeled int
	for _, r := range reviews {
		if !r.Analyzed() {
			continue
		}
		counts[r.Sentiment]++
		labeled++
	}

	dist := make(map[types.Sentiment]float64, len(counts))
	if labeled == 0 {
		return dist
	}

	for sentiment, count := range counts {
		dist[sentiment] = round2(float64(count) / float64(labeled) * 100)
	}
	return dist
}

// extractKeywords tokenizes all review text, drops short tokens and stop
// words, and returns the top terms scored by frequency relative to the
// filtered token count
func (e *Engine) extractKeywords(reviews []*model.Review) []model.KeywordScore {
	stop := make(map[string]bool, len(e.lexicon.StopWords))
	for _, w := range e.lexicon.StopWords {
		stop[strings.ToLower(w)] = true
	}

	counts := make(map[string]int)
	var order []string
	var total int

	for _, r := range reviews {
		for _, token := range tokenPattern.FindAllString(strings.ToLower(r.Text), -1) {
			if len([]rune(token)) < minTokenLength || stop[token] {
				continue
			}
			if counts[token] == 0 {
				order = append(order, token)
			}
			counts[token]++
			total++
		}
	}

	if total == 0 {
		return []model.KeywordScore{}
	}

	// stable sort keeps first-seen order among equal frequencies
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	limit := topKeywordCount
	if limit > len(order) {
		limit = len(order)
	}

	keywords := make([]model.KeywordScore, 0, limit)
	for _, term := range order[:limit] {
		keywords = append(keywords, model.KeywordScore{
			Term:  term,
			Score: round2(float64(counts[term]) / float64(total) * 10),
		})
	}
	return keywords
}

// categoryStats groups reviews by category. Average sentiment is the
// numeric rule-based score so the breakdown stays deterministic even when
// labels came from the model path.
func (e *Engine) categoryStats(reviews []*model.Review) map[types.Category]*model.CategoryStat {
	type bucket struct {
		count        int
		sentimentSum float64
		ratingSum    int
	}

	buckets := make(map[types.Category]*bucket)
	for _, r := range reviews {
		if r.Category == "" {
			continue
		}
		b, exists := buckets[r.Category]
		if !exists {
			b = &bucket{}
			buckets[r.Category] = b
		}

		res, _ := e.ruleScorer.ScoreText(context.Background(), r.Text)
		b.count++
		b.sentimentSum += res.Score
		b.ratingSum += r.Rating
	}

	stats := make(map[types.Category]*model.CategoryStat, len(buckets))
	for category, b := range buckets {
		stats[category] = &model.CategoryStat{
			Count:        b.count,
			AvgSentiment: round2(b.sentimentSum / float64(b.count)),
			AvgRating:    round2(float64(b.ratingSum) / float64(b.count)),
		}
	}
	return stats
}

// topTopics counts extracted topic strings across reviews; ties keep
// first-seen order
func topTopics(reviews []*model.Review) []model.TopicCount {
	counts := make(map[string]int)
	var order []string

	for _, r := range reviews {
		for _, topic := range r.Topics {
			if counts[topic] == 0 {
				order = append(order, topic)
			}
			counts[topic]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	limit := topTopicCount
	if limit > len(order) {
		limit = len(order)
	}

	topics := make([]model.TopicCount, 0, limit)
	for _, topic := range order[:limit] {
		topics = append(topics, model.TopicCount{Topic: topic, Count: counts[topic]})
	}
	return topics
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

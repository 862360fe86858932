package analysis

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/m-mizutani/gollem"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/interfaces"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
	"github.com/reviewsight-lab/reviewsight/pkg/utils/logging"
)

// LLMScorer scores sentiment by asking a text-generation model. It is
// best-effort: every failure path degrades to the fixed neutral result,
// never to an error reaching the pipeline.
type LLMScorer struct {
	llmClient gollem.LLMClient
}

var (
	_ interfaces.SentimentScorer = &LLMScorer{}
	_ interfaces.TopicExtractor  = &LLMScorer{}
)

var (
	scorePattern  = regexp.MustCompile(`(\d+(\.\d+)?)`)
	topicsPattern = regexp.MustCompile(`Topics?:?\s*([^.]+)`)
)

// NewLLMScorer creates a model-backed scorer
func NewLLMScorer(llmClient gollem.LLMClient) *LLMScorer {
	return &LLMScorer{llmClient: llmClient}
}

// ScoreText asks the model for a 0-1 sentiment score and topics, then
// parses the free-form reply. The first number found is the score (0.5 when
// none); topics follow a "Topics:" marker.
func (s *LLMScorer) ScoreText(ctx context.Context, text string) (*model.SentimentResult, error) {
	logger := logging.From(ctx)

	prompt := fmt.Sprintf(`Analyze the sentiment of the following customer review and assign it a score between 0 and 1, where 0 is strongly negative and 1 is strongly positive. Also identify the main topics mentioned, prefixed with "Topics:".

Review:
%s`, text)

	session, err := s.llmClient.NewSession(ctx)
	if err != nil {
		logger.Warn("sentiment model session failed, using neutral fallback", "error", err.Error())
		return model.NeutralSentimentResult(), nil
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil || len(resp.Texts) == 0 {
		logger.Warn("sentiment model call failed, using neutral fallback")
		return model.NeutralSentimentResult(), nil
	}

	reply := strings.Join(resp.Texts, "\n")

	score := 0.5
	if m := scorePattern.FindString(reply); m != "" {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			score = v
		}
	}

	var topics []string
	if m := topicsPattern.FindStringSubmatch(reply); len(m) > 1 {
		for _, topic := range strings.Split(m[1], ",") {
			if t := strings.TrimSpace(topic); t != "" {
				topics = append(topics, t)
			}
		}
	}
	if topics == nil {
		topics = []string{}
	}

	return &model.SentimentResult{
		Sentiment:  types.SentimentFromModelScore(score),
		Score:      score,
		Topics:     topics,
		Confidence: 0.8,
	}, nil
}

// ExtractTopics asks the model for a comma-separated topic list
func (s *LLMScorer) ExtractTopics(ctx context.Context, text string) ([]string, error) {
	logger := logging.From(ctx)

	prompt := fmt.Sprintf(`Extract the main topics discussed in the following text. Return them as a comma-separated list, nothing else.

Text:
%s`, text)

	session, err := s.llmClient.NewSession(ctx)
	if err != nil {
		logger.Warn("topic model session failed", "error", err.Error())
		return []string{}, nil
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil || len(resp.Texts) == 0 {
		logger.Warn("topic model call failed")
		return []string{}, nil
	}

	var topics []string
	for _, topic := range strings.Split(strings.Join(resp.Texts, ","), ",") {
		if t := strings.TrimSpace(topic); t != "" {
			topics = append(topics, t)
		}
	}
	if topics == nil {
		topics = []string{}
	}

	return topics, nil
}

package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/utils/logging"
)

// Generator produces an insight report from a KPI summary. Generation is an
// ordered fallback chain: structured model output, then regex section
// extraction from the raw reply, then the deterministic tier templates. The
// last stage cannot fail, so Generate always returns a well-formed report.
type Generator struct {
	llmClient gollem.LLMClient
}

// New creates a generator. A nil client skips the model stages and goes
// straight to the tier templates.
func New(llmClient gollem.LLMClient) *Generator {
	return &Generator{llmClient: llmClient}
}

// Generate builds the insight report for a KPI summary
func (g *Generator) Generate(ctx context.Context, summary *model.KPISummary) *model.InsightReport {
	logger := logging.From(ctx)

	// raw holds the model reply so the section-extraction stage can reuse
	// what the structured stage already fetched
	var raw string

	stages := []struct {
		name string
		run  func() (*model.InsightReport, error)
	}{
		{"structured", func() (*model.InsightReport, error) {
			reply, report, err := g.generateStructured(ctx, summary)
			raw = reply
			return report, err
		}},
		{"sections", func() (*model.InsightReport, error) {
			return extractSections(raw)
		}},
	}

	for _, stage := range stages {
		report, err := stage.run()
		if err != nil {
			logger.Warn("insight generation stage failed, falling back",
				"stage", stage.name, "error", err.Error())
			continue
		}
		if err := report.Validate(); err != nil {
			logger.Warn("insight generation stage produced unusable report, falling back",
				"stage", stage.name, "error", err.Error())
			continue
		}
		return report
	}

	return TierReport(summary.AverageRating)
}

// insightSchema is the JSON structure requested from the model
var insightSchema = &gollem.Parameter{
	Title:       "InsightReport",
	Description: "Structured business insights derived from customer review KPIs",
	Type:        gollem.TypeObject,
	Properties: map[string]*gollem.Parameter{
		"summary": {
			Type:        gollem.TypeString,
			Description: "Short narrative summary of the overall customer perception",
			Required:    true,
		},
		"strengths": {
			Type:        gollem.TypeArray,
			Description: "Three main strengths visible in the reviews",
			Items:       &gollem.Parameter{Type: gollem.TypeString},
			Required:    true,
		},
		"improvements": {
			Type:        gollem.TypeArray,
			Description: "Three areas needing improvement",
			Items:       &gollem.Parameter{Type: gollem.TypeString},
			Required:    true,
		},
		"recommendations": {
			Type:        gollem.TypeArray,
			Description: "Three concrete recommended actions",
			Items:       &gollem.Parameter{Type: gollem.TypeString},
			Required:    true,
		},
		"trends": {
			Type:        gollem.TypeArray,
			Description: "Three observed or expected trends",
			Items:       &gollem.Parameter{Type: gollem.TypeString},
			Required:    true,
		},
	},
}

func (g *Generator) generateStructured(ctx context.Context, summary *model.KPISummary) (string, *model.InsightReport, error) {
	if g.llmClient == nil {
		return "", nil, goerr.New("no model client configured")
	}

	session, err := g.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(insightSchema),
	)
	if err != nil {
		return "", nil, goerr.Wrap(err, "failed to create insight session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buildPrompt(summary)))
	if err != nil {
		return "", nil, goerr.Wrap(err, "insight generation call failed")
	}
	if len(resp.Texts) == 0 {
		return "", nil, goerr.New("insight generation returned empty result")
	}

	raw := strings.Join(resp.Texts, "\n")

	var report model.InsightReport
	if err := json.Unmarshal([]byte(resp.Texts[0]), &report); err != nil {
		return raw, nil, goerr.Wrap(err, "failed to parse insight JSON")
	}

	return raw, &report, nil
}

func buildPrompt(summary *model.KPISummary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `You are a customer experience analyst. Based on the following review KPIs, produce business insights as JSON with fields summary (string), strengths, improvements, recommendations and trends (each a list of 3 strings).

Average rating: %.2f / 5 over %d reviews
Positive sentiment share: %.1f%%
`, summary.AverageRating, summary.ReviewCount, summary.SentimentScore)

	if len(summary.SentimentDistribution) > 0 {
		sb.WriteString("Sentiment distribution:\n")
		for sentiment, pct := range summary.SentimentDistribution {
			fmt.Fprintf(&sb, "- %s: %.1f%%\n", sentiment, pct)
		}
	}

	if len(summary.TopKeywords) > 0 {
		sb.WriteString("Most frequent terms: ")
		terms := make([]string, 0, len(summary.TopKeywords))
		for _, kw := range summary.TopKeywords {
			terms = append(terms, kw.Term)
		}
		sb.WriteString(strings.Join(terms, ", "))
		sb.WriteString("\n")
	}

	if len(summary.CategoryStats) > 0 {
		sb.WriteString("Per-category breakdown:\n")
		for category, stat := range summary.CategoryStats {
			fmt.Fprintf(&sb, "- %s: %d reviews, avg rating %.2f, avg sentiment %.2f\n",
				category, stat.Count, stat.AvgRating, stat.AvgSentiment)
		}
	}

	return sb.String()
}

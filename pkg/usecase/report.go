package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
)

// ReportMetadata describes when and for whom a report was built
type ReportMetadata struct {
	GeneratedAt  time.Time `json:"generated_at"`
	BusinessName string    `json:"business_name"`
	TotalReviews int       `json:"total_reviews"`
}

// Report is the full analysis deliverable for a session
type Report struct {
	Metadata ReportMetadata       `json:"metadata"`
	KPIs     *model.KPISummary    `json:"kpis"`
	Insights *model.InsightReport `json:"insights"`
	Reviews  []*model.Review      `json:"reviews,omitempty"`
}

// GenerateReport analyzes the session's reviews, derives KPIs and generates
// the insight report. When includeReviews is set the individual analyzed
// reviews are embedded in the report.
func (uc *UseCases) GenerateReport(ctx context.Context, id types.SessionID, includeReviews bool) (*Report, error) {
	session, err := uc.repo.Session().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(session.Reviews) == 0 {
		return nil, goerr.Wrap(ErrNoReviews, "report requires collected reviews",
			goerr.V("session_id", id),
		)
	}

	uc.engine.AnalyzeReviews(ctx, session.Reviews)
	summary := uc.engine.Summarize(session.Reviews)
	insights := uc.insights.Generate(ctx, summary)

	if err := uc.repo.Session().Put(ctx, session); err != nil {
		return nil, goerr.Wrap(err, "failed to store analyzed reviews")
	}

	report := &Report{
		Metadata: ReportMetadata{
			GeneratedAt:  time.Now().UTC(),
			BusinessName: session.BusinessName,
			TotalReviews: len(session.Reviews),
		},
		KPIs:     summary,
		Insights: insights,
	}
	if includeReviews {
		report.Reviews = session.Reviews
	}

	return report, nil
}

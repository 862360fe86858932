package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
	"github.com/reviewsight-lab/reviewsight/pkg/utils/logging"
)

// PipelineInput configures a one-shot pipeline run
type PipelineInput struct {
	Company RegisterCompanyInput
	Collect CollectInput
}

// PipelineResult is the outcome of a full pipeline run
type PipelineResult struct {
	SessionID   types.SessionID      `json:"session_id"`
	ReviewCount int                  `json:"review_count"`
	Collection  *CollectResult       `json:"collection"`
	KPIs        *model.KPISummary    `json:"kpis"`
	Insights    *model.InsightReport `json:"insights"`
	ExportPaths []string             `json:"export_paths,omitempty"`
}

// RunPipeline executes the whole flow in one call: register the business,
// collect reviews from every configured platform, analyze them, generate
// insights and export the results as CSV. Collection shortfalls are topped
// up per the input; export failures abort the run since a partial file on
// disk is worse than no file.
func (uc *UseCases) RunPipeline(ctx context.Context, input PipelineInput) (*PipelineResult, error) {
	session, err := uc.RegisterCompany(ctx, input.Company)
	if err != nil {
		return nil, err
	}

	logger := logging.From(ctx).With("session_id", session.ID)
	ctx = logging.With(ctx, logger)
	logger.Info("pipeline started", "business", session.BusinessName)

	collection, err := uc.Collect(ctx, session.ID, input.Collect)
	if err != nil {
		return nil, err
	}

	summary, count, err := uc.Analyze(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	insights := uc.insights.Generate(ctx, summary)

	result := &PipelineResult{
		SessionID:   session.ID,
		ReviewCount: count,
		Collection:  collection,
		KPIs:        summary,
		Insights:    insights,
	}

	if uc.sink != nil {
		session, err = uc.repo.Session().Get(ctx, session.ID)
		if err != nil {
			return nil, err
		}

		reviewPath, err := uc.sink.WriteReviews(ctx, fmt.Sprintf("reviews_%s.csv", session.ID), session.Reviews)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to export reviews")
		}
		statsPath, err := uc.sink.WriteCategoryStats(ctx, fmt.Sprintf("categories_%s.csv", session.ID), summary.CategoryStats)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to export category stats")
		}
		result.ExportPaths = []string{reviewPath, statsPath}
	}

	logger.Info("pipeline completed",
		"reviews", count,
		"average_rating", summary.AverageRating,
	)

	return result, nil
}

package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
)

// Analyze scores every collected review and computes the KPI summary. The
// session is updated in place so later report generation sees the analyzed
// reviews. Returns the summary and the number of reviews analyzed.
func (uc *UseCases) Analyze(ctx context.Context, id types.SessionID) (*model.KPISummary, int, error) {
	session, err := uc.repo.Session().Get(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	if len(session.Reviews) == 0 {
		return nil, 0, goerr.Wrap(ErrNoReviews, "analysis requires collected reviews",
			goerr.V("session_id", id),
		)
	}

	uc.engine.AnalyzeReviews(ctx, session.Reviews)
	summary := uc.engine.Summarize(session.Reviews)

	if err := uc.repo.Session().Put(ctx, session); err != nil {
		return nil, 0, goerr.Wrap(err, "failed to store analyzed reviews")
	}

	return summary, len(session.Reviews), nil
}

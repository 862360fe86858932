package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/interfaces"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
	"github.com/reviewsight-lab/reviewsight/pkg/utils/logging"
)

// CollectInput controls one collection run
type CollectInput struct {
	// Platforms restricts collection to the given platforms. Empty means
	// all configured adapters.
	Platforms []types.Platform

	// LimitPerPlatform caps reviews fetched from each platform
	LimitPerPlatform int

	// MinTotal, when positive, tops up the result with synthetic reviews
	// until the total reaches this count
	MinTotal int
}

const defaultLimitPerPlatform = 20

// CollectResult reports how many reviews each source contributed
type CollectResult struct {
	PerPlatform map[types.Platform]int `json:"per_platform"`
	Simulated   int                    `json:"simulated"`
	Total       int                    `json:"total"`
}

// Collect runs every configured adapter against the session's business and
// appends the normalized reviews to the session. A platform that cannot
// resolve or fetch contributes zero reviews; the run keeps going. When the
// real total falls short of MinTotal and a synthesizer is configured, the
// gap is filled with simulated reviews whose IDs continue from the real
// count.
func (uc *UseCases) Collect(ctx context.Context, id types.SessionID, input CollectInput) (*CollectResult, error) {
	if len(uc.adapters) == 0 {
		return nil, goerr.Wrap(ErrNoAdapters, "cannot collect reviews")
	}

	session, err := uc.repo.Session().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	limit := input.LimitPerPlatform
	if limit <= 0 {
		limit = defaultLimitPerPlatform
	}

	logger := logging.From(ctx)
	result := &CollectResult{
		PerPlatform: map[types.Platform]int{},
	}

	for _, adapter := range uc.adapters {
		platform := adapter.Platform()
		if !platformSelected(input.Platforms, platform) {
			continue
		}
		result.PerPlatform[platform] = 0

		identifier, err := adapter.Resolve(ctx, session)
		if err != nil {
			if errors.Is(err, interfaces.ErrSourceNotFound) {
				logger.Info("business not found on platform, skipping",
					"platform", platform,
					"business", session.BusinessName,
				)
			} else {
				logger.Warn("platform lookup failed, skipping",
					"platform", platform,
					logging.ErrAttr(err),
				)
			}
			continue
		}

		reviews, err := adapter.FetchReviews(ctx, identifier, limit)
		if err != nil {
			logger.Warn("review fetch failed, skipping platform",
				"platform", platform,
				logging.ErrAttr(err),
			)
			continue
		}

		session.AddReviews(reviews...)
		result.PerPlatform[platform] = len(reviews)
		result.Total += len(reviews)
	}

	if uc.synthesizer != nil && input.MinTotal > result.Total {
		gap := input.MinTotal - result.Total
		simulated := uc.synthesizer.Generate(gap, result.Total)
		session.AddReviews(simulated...)
		result.Simulated = len(simulated)
		result.Total += len(simulated)
		logger.Info("topped up with simulated reviews",
			"simulated", result.Simulated,
			"total", result.Total,
		)
	}

	if err := uc.repo.Session().Put(ctx, session); err != nil {
		return nil, goerr.Wrap(err, "failed to store collected reviews")
	}

	return result, nil
}

func platformSelected(selected []types.Platform, p types.Platform) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == p {
			return true
		}
	}
	return false
}

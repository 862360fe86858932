package interfaces

import (
	"context"

	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
)

// SourceAdapter resolves a business identifier on one review platform and
// fetches its reviews. Both operations perform at most one outbound call
// and degrade rather than fail: Resolve returns ErrSourceNotFound when the
// platform knows nothing about the business (or the lookup failed), and
// FetchReviews returns an empty slice on any fetch failure.
type SourceAdapter interface {
	// Platform identifies the origin this adapter collects from
	Platform() types.Platform

	// Resolve looks up the platform-specific identifier for the session's
	// business. Returns ErrSourceNotFound when the business cannot be
	// resolved; callers skip the platform, they do not abort.
	Resolve(ctx context.Context, s *model.Session) (string, error)

	// FetchReviews retrieves up to maxResults normalized reviews for the
	// resolved identifier. A failure yields an empty slice, never partial
	// silently-wrong data.
	FetchReviews(ctx context.Context, identifier string, maxResults int) ([]*model.Review, error)
}

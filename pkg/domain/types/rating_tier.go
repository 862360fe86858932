package types

// RatingTier buckets an average rating for the deterministic insight
// templates
type RatingTier string

const (
	RatingTierHigh RatingTier = "high"
	RatingTierMid  RatingTier = "mid"
	RatingTierLow  RatingTier = "low"
)

// TierForRating maps an average rating to its tier: >=4 high, >=3 mid,
// otherwise low
func TierForRating(avg float64) RatingTier {
	switch {
	case avg >= 4:
		return RatingTierHigh
	case avg >= 3:
		return RatingTierMid
	default:
		return RatingTierLow
	}
}

// String returns the string representation of the tier
func (t RatingTier) String() string {
	return string(t)
}

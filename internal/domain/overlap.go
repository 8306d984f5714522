package domain

// RatingPair is one media item both users rated, with each side's rating.
type RatingPair struct {
	MediaID string
	RatingA float64
	RatingB float64
}

// DefaultRatingDelta is used when a pair shares items but no rated
// overlap exists. Neutral and moderately penalizing: neither perfect
// alignment (0) nor maximal disagreement.
const DefaultRatingDelta = 1.0

// OverlapStats summarizes the interaction overlap between two users.
type OverlapStats struct {
	SharedCount    int
	AvgRatingDelta float64
}

// ComputeOverlapStats derives overlap statistics from the rated join
// between two users. When the rated join is empty, anySharedCount (the
// count of shared items regardless of rating) is reported instead, with
// the default delta. No overlap at all yields (0, DefaultRatingDelta).
func ComputeOverlapStats(rated []RatingPair, anySharedCount int) OverlapStats {
	if len(rated) == 0 {
		return OverlapStats{
			SharedCount:    anySharedCount,
			AvgRatingDelta: DefaultRatingDelta,
		}
	}

	var totalDelta float64
	for _, pair := range rated {
		delta := pair.RatingA - pair.RatingB
		if delta < 0 {
			delta = -delta
		}
		totalDelta += delta
	}

	return OverlapStats{
		SharedCount:    len(rated),
		AvgRatingDelta: totalDelta / float64(len(rated)),
	}
}

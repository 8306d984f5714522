package domain

import "math"

// Compatibility score fusion weights. Fixed design constants.
const (
	vibeWeight    = 0.40
	overlapWeight = 0.35
	ratingWeight  = 0.25

	// overlapSaturation is the shared-item count at which the overlap
	// sub-score reaches 1.0.
	overlapSaturation = 20

	// ratingDeltaCeiling is the average rating delta at which the rating
	// alignment sub-score reaches 0.0 (half the 5-point scale).
	ratingDeltaCeiling = 2.5
)

// CosineSimilarity computes the cosine similarity between two vectors.
// Returns 0 if either vector is zero-length or all-zero.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// OverlapScore maps a shared-item count to [0, 1] on a logarithmic scale,
// saturating around overlapSaturation shared items.
func OverlapScore(sharedCount int) float64 {
	if sharedCount <= 0 {
		return 0
	}
	return math.Min(1, math.Log1p(float64(sharedCount))/math.Log1p(overlapSaturation))
}

// RatingAlignmentScore maps an average rating delta to [0, 1]. A delta of
// 0 scores 1.0; deltas at or beyond ratingDeltaCeiling score 0.
func RatingAlignmentScore(avgDelta float64) float64 {
	return math.Max(0, 1-avgDelta/ratingDeltaCeiling)
}

// CompatibilityScore fuses vector similarity, overlap magnitude, and
// rating alignment into a single score in [0, 100], rounded to two
// decimal places.
func CompatibilityScore(vecA, vecB []float32, sharedCount int, avgDelta float64) float64 {
	vibe := math.Max(0, CosineSimilarity(vecA, vecB))
	overlap := OverlapScore(sharedCount)
	rating := RatingAlignmentScore(avgDelta)

	score := (vibe*vibeWeight + overlap*overlapWeight + rating*ratingWeight) * 100
	return math.Round(score*100) / 100
}

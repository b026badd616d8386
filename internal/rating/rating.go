package rating

import "math"

const (
	// DefaultKFactor is the standard sensitivity constant; it caps the
	// rating swing of a single match at K points.
	DefaultKFactor = 32.0

	// BaselineRating is assigned to every player on first appearance.
	BaselineRating = 1500.0
)

// Scores a player can actually achieve in a single match.
const (
	ScoreWin  = 1.0
	ScoreDraw = 0.5
	ScoreLoss = 0.0
)

// ExpectedScore returns the probability of player A beating player B
// under the logistic Elo model. ExpectedScore(a, b) + ExpectedScore(b, a)
// is always 1.
func ExpectedScore(ratingA, ratingB float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (ratingB-ratingA)/400.0))
}

// Delta returns the rating change for a player who was expected to score
// `expected` and actually scored `actual` (one of ScoreWin, ScoreDraw,
// ScoreLoss).
func Delta(expected, actual, kFactor float64) float64 {
	return kFactor * (actual - expected)
}

// UpdateRatings computes both players' new ratings after a match in which
// player A scored scoreA. The returned change is the signed delta applied
// to player A; player B receives the exact opposite, so the transfer is
// zero-sum.
func UpdateRatings(ratingA, ratingB, scoreA, kFactor float64) (newRatingA, newRatingB, change float64) {
	expectedA := ExpectedScore(ratingA, ratingB)
	change = Delta(expectedA, scoreA, kFactor)
	return ratingA + change, ratingB - change, change
}

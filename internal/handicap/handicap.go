package handicap

import (
	"errors"
	"math"
	"sort"

	"golf-tracker/internal/models"
)

const (
	// slopeBase is the slope rating of a course of standard difficulty.
	slopeBase = 113
	// bestCount is how many of the lowest differentials feed the index.
	bestCount = 8
	// adjustment scales the averaged differentials down per the USGA method.
	adjustment = 0.96
)

// ErrZeroSlope is returned when a round carries a zero course slope, which
// would otherwise divide by zero. Valid slopes are roughly 55-155.
var ErrZeroSlope = errors.New("round has zero course slope")

// Differential is the normalized quality of a single round:
// (score - course rating) * 113 / slope.
func Differential(r models.Round) (float64, error) {
	if r.CourseSlope == 0 {
		return 0, ErrZeroSlope
	}
	return (float64(r.Score) - r.CourseRating) * slopeBase / float64(r.CourseSlope), nil
}

// Calculate computes the handicap index from a set of rounds: the mean of
// the lowest min(8, len) differentials, scaled by 0.96 and rounded to one
// decimal. Callers wanting the official index supply the 20 most recent
// rounds; input order does not matter. Returns nil for an empty set.
func Calculate(rounds []models.Round) (*float64, error) {
	if len(rounds) == 0 {
		return nil, nil
	}

	diffs := make([]float64, 0, len(rounds))
	for _, r := range rounds {
		d, err := Differential(r)
		if err != nil {
			return nil, err
		}
		diffs = append(diffs, d)
	}
	sort.Float64s(diffs)

	count := min(bestCount, len(diffs))
	var sum float64
	for _, d := range diffs[:count] {
		sum += d
	}

	index := roundToTenth(sum / float64(count) * adjustment)
	return &index, nil
}

// roundToTenth rounds half to even at one decimal place.
func roundToTenth(x float64) float64 {
	return math.RoundToEven(x*10) / 10
}

package courses

import (
	"testing"

	"golf-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestDistinctDeduplicatesByCourseAndTees(t *testing.T) {
	rounds := []models.Round{
		{Course: strPtr("A"), Tees: strPtr("Blue"), CourseRating: 71.5, CourseSlope: 125, Par: intPtr(70)},
		{Course: strPtr("A"), Tees: strPtr("Blue"), CourseRating: 72.0, CourseSlope: 130, Par: intPtr(72)},
		{Course: strPtr("A"), Tees: strPtr("White"), CourseRating: 70.1, CourseSlope: 118, Par: intPtr(71)},
	}

	entries := Distinct(rounds)
	require.Len(t, entries, 2)

	// First occurrence wins, input order preserved.
	assert.Equal(t, "A", entries[0].Course)
	assert.Equal(t, "Blue", entries[0].Tees)
	assert.Equal(t, 71.5, entries[0].CourseRating)
	assert.Equal(t, 125, entries[0].CourseSlope)
	require.NotNil(t, entries[0].Par)
	assert.Equal(t, 70, *entries[0].Par)

	assert.Equal(t, "White", entries[1].Tees)
}

func TestDistinctSkipsRoundsMissingCourseOrTees(t *testing.T) {
	rounds := []models.Round{
		{Course: nil, Tees: strPtr("Blue")},
		{Course: strPtr("A"), Tees: nil},
		{Course: strPtr(""), Tees: strPtr("Blue")},
		{Course: strPtr("A"), Tees: strPtr("")},
	}

	assert.Empty(t, Distinct(rounds))
}

func TestDistinctEmptyInput(t *testing.T) {
	assert.Empty(t, Distinct(nil))
}

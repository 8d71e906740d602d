package storage

import (
	"context"
	"testing"
	"time"

	"golf-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *RoundStore {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	return NewRoundStore(db)
}

func day(offset int) time.Time {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func seedRound(t *testing.T, store *RoundStore, userID int64, date time.Time, score int) models.Round {
	t.Helper()
	round := models.Round{
		UserID: userID, Date: date, Score: score, CourseRating: 72.0, CourseSlope: 113,
	}
	require.NoError(t, store.CreateRound(context.Background(), &round))
	return round
}

func TestRoundsForUserIsScoped(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seedRound(t, store, 1, day(0), 90)
	seedRound(t, store, 1, day(1), 85)
	seedRound(t, store, 2, day(2), 70)

	rounds, err := store.RoundsForUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rounds, 2)
	for _, r := range rounds {
		assert.Equal(t, int64(1), r.UserID)
	}

	rounds, err = store.RoundsForUser(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, rounds)
}

func TestRecentRoundsForUserOrderAndLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Inserted out of date order on purpose.
	seedRound(t, store, 1, day(2), 88)
	seedRound(t, store, 1, day(4), 90)
	seedRound(t, store, 1, day(1), 85)
	seedRound(t, store, 1, day(3), 92)
	seedRound(t, store, 1, day(0), 95)

	rounds, err := store.RecentRoundsForUser(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, rounds, 3)
	assert.Equal(t, 90, rounds[0].Score)
	assert.Equal(t, 92, rounds[1].Score)
	assert.Equal(t, 88, rounds[2].Score)
}

func TestUpdateRoundPartial(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	course := "Pine Valley"
	round := seedRound(t, store, 1, day(0), 90)
	round.Course = &course

	newScore := 84
	updated, err := store.UpdateRound(ctx, 1, round.ID, models.RoundPatch{Score: &newScore})
	require.NoError(t, err)

	assert.Equal(t, 84, updated.Score)
	assert.Equal(t, 72.0, updated.CourseRating)
	assert.Equal(t, 113, updated.CourseSlope)
}

func TestUpdateRoundWrongUser(t *testing.T) {
	store := newTestStore(t)
	round := seedRound(t, store, 1, day(0), 90)

	newScore := 60
	_, err := store.UpdateRound(context.Background(), 2, round.ID, models.RoundPatch{Score: &newScore})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteRound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	round := seedRound(t, store, 1, day(0), 90)

	require.NoError(t, store.DeleteRound(ctx, 1, round.ID))

	err := store.DeleteRound(ctx, 1, round.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteRoundWrongUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	round := seedRound(t, store, 1, day(0), 90)

	err := store.DeleteRound(ctx, 2, round.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	rounds, err := store.RoundsForUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rounds, 1)
}

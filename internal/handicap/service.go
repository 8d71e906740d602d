package handicap

import (
	"context"
	"time"

	"golf-tracker/internal/models"
)

// historyLimit is how many recent rounds count toward the index.
const historyLimit = 20

// RoundSource supplies a user's most recent rounds, newest first.
type RoundSource interface {
	RecentRoundsForUser(ctx context.Context, userID int64, limit int) ([]models.Round, error)
}

// Service computes current and projected handicaps from stored rounds.
type Service struct {
	rounds RoundSource
}

func NewService(rounds RoundSource) *Service {
	return &Service{rounds: rounds}
}

// Current returns the user's handicap index over their last 20 rounds,
// or nil if they have none.
func (s *Service) Current(ctx context.Context, userID int64) (*float64, error) {
	rounds, err := s.rounds.RecentRoundsForUser(ctx, userID, historyLimit)
	if err != nil {
		return nil, err
	}
	return Calculate(rounds)
}

// Project answers "what would my handicap be if I shot this round today":
// the 19 most recent real rounds plus one hypothetical round, which is
// never persisted.
func (s *Service) Project(ctx context.Context, userID int64, score int, rating float64, slope int) (*float64, error) {
	rounds, err := s.rounds.RecentRoundsForUser(ctx, userID, historyLimit-1)
	if err != nil {
		return nil, err
	}
	rounds = append(rounds, models.Round{
		Score:        score,
		CourseRating: rating,
		CourseSlope:  slope,
		Date:         time.Now(),
	})
	return Calculate(rounds)
}

package storage

import (
	"context"
	"fmt"

	"golf-tracker/internal/models"

	"gorm.io/gorm"
)

// RoundStore reads and writes rounds. Every query is scoped to a single
// user: rounds belonging to anyone else are never returned or touched.
type RoundStore struct {
	db *gorm.DB
}

func NewRoundStore(db *gorm.DB) *RoundStore {
	return &RoundStore{db: db}
}

// RoundsForUser returns all of the user's rounds in insertion order.
func (s *RoundStore) RoundsForUser(ctx context.Context, userID int64) ([]models.Round, error) {
	var rounds []models.Round
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rounds).Error
	if err != nil {
		return nil, fmt.Errorf("load rounds: %w", err)
	}
	return rounds, nil
}

// RecentRoundsForUser returns at most limit rounds, newest date first.
func (s *RoundStore) RecentRoundsForUser(ctx context.Context, userID int64, limit int) ([]models.Round, error) {
	var rounds []models.Round
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&rounds).Error
	if err != nil {
		return nil, fmt.Errorf("load recent rounds: %w", err)
	}
	return rounds, nil
}

func (s *RoundStore) CreateRound(ctx context.Context, round *models.Round) error {
	if err := s.db.WithContext(ctx).Create(round).Error; err != nil {
		return fmt.Errorf("create round: %w", err)
	}
	return nil
}

// UpdateRound applies the non-nil fields of patch to the user's round.
// Returns gorm.ErrRecordNotFound when the round does not exist or belongs
// to another user.
func (s *RoundStore) UpdateRound(ctx context.Context, userID, roundID int64, patch models.RoundPatch) (*models.Round, error) {
	var round models.Round
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", roundID, userID).
		First(&round).Error
	if err != nil {
		return nil, err
	}

	if patch.Score != nil {
		round.Score = *patch.Score
	}
	if patch.CourseRating != nil {
		round.CourseRating = *patch.CourseRating
	}
	if patch.CourseSlope != nil {
		round.CourseSlope = *patch.CourseSlope
	}
	if patch.Date != nil {
		round.Date = *patch.Date
	}
	if patch.Course != nil {
		round.Course = patch.Course
	}
	if patch.Tees != nil {
		round.Tees = patch.Tees
	}
	if patch.Yardage != nil {
		round.Yardage = patch.Yardage
	}
	if patch.Par != nil {
		round.Par = patch.Par
	}

	if err := s.db.WithContext(ctx).Save(&round).Error; err != nil {
		return nil, fmt.Errorf("update round: %w", err)
	}
	return &round, nil
}

// DeleteRound removes the user's round. Returns gorm.ErrRecordNotFound when
// the round does not exist or belongs to another user.
func (s *RoundStore) DeleteRound(ctx context.Context, userID, roundID int64) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", roundID, userID).
		Delete(&models.Round{})
	if res.Error != nil {
		return fmt.Errorf("delete round: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

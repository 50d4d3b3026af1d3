package services

import (
	"context"
	"errors"
	"fmt"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/db"
	"scoutline/backend/internal/db/repositories"
	"scoutline/backend/internal/models/entities"
)

// ClubHistoryService manages a player's club history entries. Every
// history owns exactly one achievements row; the pair is created and
// deleted together.
type ClubHistoryService struct {
	histories    repositories.ClubHistoryStore
	achievements repositories.AchievementsStore
	alloc        db.SequenceAllocator
}

func NewClubHistoryService(
	histories repositories.ClubHistoryStore,
	achievements repositories.AchievementsStore,
	alloc db.SequenceAllocator,
) *ClubHistoryService {
	return &ClubHistoryService{
		histories:    histories,
		achievements: achievements,
		alloc:        alloc,
	}
}

func (s *ClubHistoryService) Create(ctx context.Context, history *entities.ClubHistory) error {
	if history.PlayerID == "" {
		return fmt.Errorf("player is required: %w", apperrors.ErrInvalidArgument)
	}

	if history.Achievements == nil {
		history.Achievements = &entities.Achievements{}
	}

	achID, err := s.alloc.NextID(ctx, constants.CollAchievements)
	if err != nil {
		return err
	}
	history.Achievements.ID = achID
	if err := s.achievements.Insert(ctx, history.Achievements); err != nil {
		return err
	}

	id, err := s.alloc.NextID(ctx, constants.CollClubHistories)
	if err != nil {
		return err
	}
	history.ID = id
	history.AchievementsID = achID
	return s.histories.Insert(ctx, history)
}

func (s *ClubHistoryService) Get(ctx context.Context, id int64) (*entities.ClubHistory, error) {
	history, err := s.histories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if history == nil {
		return nil, fmt.Errorf("club history %d: %w", id, apperrors.ErrNotFound)
	}
	if history.Achievements, err = s.achievements.FindByID(ctx, history.AchievementsID); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *ClubHistoryService) ListByPlayer(ctx context.Context, playerID string) ([]entities.ClubHistory, error) {
	return s.histories.ListByPlayer(ctx, playerID)
}

// Delete removes the owned achievements row first, then the history
func (s *ClubHistoryService) Delete(ctx context.Context, id int64) error {
	history, err := s.histories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if history == nil {
		return fmt.Errorf("club history %d: %w", id, apperrors.ErrNotFound)
	}

	if err := s.achievements.Delete(ctx, history.AchievementsID); err != nil {
		return err
	}
	err = s.histories.Delete(ctx, id)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	return nil
}

package services

import (
	"context"
	"fmt"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/db"
	"scoutline/backend/internal/db/repositories"
	"scoutline/backend/internal/models/entities"
)

// FavoritesService indexes which users favorited which advertisements
// of one side. One row per (advertisement, user) pair: Add on an
// existing pair returns the existing row instead of inserting another.
type FavoritesService struct {
	side      constants.Side
	favorites repositories.FavoriteStore
	ads       repositories.AdvertisementStore
	alloc     db.SequenceAllocator
}

func NewFavoritesService(
	side constants.Side,
	favorites repositories.FavoriteStore,
	ads repositories.AdvertisementStore,
	alloc db.SequenceAllocator,
) *FavoritesService {
	return &FavoritesService{
		side:      side,
		favorites: favorites,
		ads:       ads,
		alloc:     alloc,
	}
}

func (s *FavoritesService) Side() constants.Side { return s.side }

// Add favorites an advertisement for a user and returns the favorite id
func (s *FavoritesService) Add(ctx context.Context, advertisementID int64, userID string) (int64, error) {
	if userID == "" {
		return 0, fmt.Errorf("user is required: %w", apperrors.ErrInvalidArgument)
	}

	ad, err := s.ads.FindByID(ctx, advertisementID)
	if err != nil {
		return 0, err
	}
	if ad == nil {
		return 0, fmt.Errorf("advertisement %d: %w", advertisementID, apperrors.ErrInvalidArgument)
	}

	existing, err := s.favorites.FindByPair(ctx, advertisementID, userID)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return existing.ID, nil
	}

	id, err := s.alloc.NextID(ctx, constants.FavoriteCollection(s.side))
	if err != nil {
		return 0, err
	}

	fav := &entities.Favorite{
		ID:              id,
		Side:            s.side.String(),
		AdvertisementID: advertisementID,
		UserID:          userID,
	}
	if err := s.favorites.Insert(ctx, fav); err != nil {
		return 0, err
	}
	return id, nil
}

// Remove fails with NotFound when the favorite is already gone
func (s *FavoritesService) Remove(ctx context.Context, favoriteID int64) error {
	return s.favorites.Delete(ctx, favoriteID)
}

// CheckFavorite returns the favorite id for the pair, or 0 when the
// user has not favorited the advertisement
func (s *FavoritesService) CheckFavorite(ctx context.Context, advertisementID int64, userID string) (int64, error) {
	fav, err := s.favorites.FindByPair(ctx, advertisementID, userID)
	if err != nil {
		return 0, err
	}
	if fav == nil {
		return 0, nil
	}
	return fav.ID, nil
}

func (s *FavoritesService) ListByUser(ctx context.Context, userID string) ([]entities.Favorite, error) {
	return s.favorites.ListByUser(ctx, userID)
}

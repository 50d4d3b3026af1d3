package services

import (
	"context"
	"fmt"
	"time"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/common"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/db"
	"scoutline/backend/internal/db/repositories"
	"scoutline/backend/internal/logging"
	"scoutline/backend/internal/models/entities"
)

const activeCountTTL = 30 * time.Second

// CatalogService manages the advertisements of one side of the market.
// The player and club catalogs are the same service bound to different
// stores; offers answering this side's advertisements live on the
// opposite side's offer store.
type CatalogService struct {
	side      constants.Side
	ads       repositories.AdvertisementStore
	salaries  repositories.SalaryRangeStore
	positions repositories.PositionStore
	users     repositories.UserStore
	favorites repositories.FavoriteStore
	offers    repositories.OfferStore
	alloc     db.SequenceAllocator
	cache     common.CacheInterface
	now       func() time.Time
}

func NewCatalogService(
	side constants.Side,
	ads repositories.AdvertisementStore,
	salaries repositories.SalaryRangeStore,
	positions repositories.PositionStore,
	users repositories.UserStore,
	favorites repositories.FavoriteStore,
	offers repositories.OfferStore,
	alloc db.SequenceAllocator,
	cache common.CacheInterface,
	now func() time.Time,
) *CatalogService {
	if now == nil {
		now = time.Now
	}
	return &CatalogService{
		side:      side,
		ads:       ads,
		salaries:  salaries,
		positions: positions,
		users:     users,
		favorites: favorites,
		offers:    offers,
		alloc:     alloc,
		cache:     cache,
		now:       now,
	}
}

func (s *CatalogService) Side() constants.Side { return s.side }

// Get resolves the advertisement's position, salary range and publisher
// by id at read time; nothing is joined in the store.
func (s *CatalogService) Get(ctx context.Context, id int64) (*entities.Advertisement, error) {
	ad, err := s.ads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, fmt.Errorf("%s: %w", constants.MsgAdvertisementGone, apperrors.ErrNotFound)
	}

	if ad.SalaryRange, err = s.salaries.FindByID(ctx, ad.SalaryRangeID); err != nil {
		return nil, err
	}
	if ad.Position, err = s.positions.FindByID(ctx, ad.PositionID); err != nil {
		return nil, err
	}
	if ad.Publisher, err = s.users.FindByID(ctx, ad.UserID); err != nil {
		return nil, err
	}
	return ad, nil
}

// ListAll returns every advertisement, latest-expiring first
func (s *CatalogService) ListAll(ctx context.Context) ([]entities.Advertisement, error) {
	return s.ads.ListAll(ctx)
}

// ListActive returns open advertisements, soonest to expire first
func (s *CatalogService) ListActive(ctx context.Context) ([]entities.Advertisement, error) {
	return s.ads.ListActive(ctx, s.now())
}

func (s *CatalogService) ListInactive(ctx context.Context) ([]entities.Advertisement, error) {
	return s.ads.ListInactive(ctx, s.now())
}

// CountActive is served from cache with a short TTL; the count backs
// landing-page badges and need not be exact to the second
func (s *CatalogService) CountActive(ctx context.Context) (int64, error) {
	if s.cache == nil {
		return s.ads.CountActive(ctx, s.now())
	}

	key := fmt.Sprintf("ads:%s:active_count", s.side)
	val, err := s.cache.GetOrSet(key, activeCountTTL, func() (any, error) {
		return s.ads.CountActive(ctx, s.now())
	})
	if err != nil {
		return 0, err
	}

	switch n := val.(type) {
	case int64:
		return n, nil
	case float64:
		// Redis round-trips numbers through JSON
		return int64(n), nil
	default:
		return s.ads.CountActive(ctx, s.now())
	}
}

// Create persists the owned salary range first, then the advertisement.
// Creation and end dates are server-assigned: the advertisement is open
// for exactly 30 days.
func (s *CatalogService) Create(ctx context.Context, ad *entities.Advertisement) error {
	if ad.SalaryRange == nil {
		return fmt.Errorf("salary range is required: %w", apperrors.ErrInvalidArgument)
	}
	if ad.UserID == "" {
		return fmt.Errorf("publisher is required: %w", apperrors.ErrInvalidArgument)
	}

	position, err := s.positions.FindByID(ctx, ad.PositionID)
	if err != nil {
		return err
	}
	if position == nil {
		return fmt.Errorf("unknown position %d: %w", ad.PositionID, apperrors.ErrInvalidArgument)
	}

	rangeID, err := s.alloc.NextID(ctx, constants.CollSalaryRange)
	if err != nil {
		return err
	}
	ad.SalaryRange.ID = rangeID
	if err := s.salaries.Insert(ctx, ad.SalaryRange); err != nil {
		return err
	}

	id, err := s.alloc.NextID(ctx, constants.AdvertisementCollection(s.side))
	if err != nil {
		return err
	}

	now := s.now()
	ad.ID = id
	ad.Side = s.side.String()
	ad.SalaryRangeID = rangeID
	ad.PositionName = position.Name
	ad.CreationDate = now
	ad.EndDate = now.Add(30 * 24 * time.Hour)

	if err := s.ads.Insert(ctx, ad); err != nil {
		return err
	}

	s.invalidateCount()
	logging.Info("Advertisement created", "side", s.side.String(), "ad_id", id, "user_id", ad.UserID)
	return nil
}

// Update replaces the advertisement wholesale. An attached salary range
// with a non-zero id is a denormalized copy of its own row and is
// replaced too, keeping the copies in sync.
func (s *CatalogService) Update(ctx context.Context, ad *entities.Advertisement) error {
	existing, err := s.ads.FindByID(ctx, ad.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%s: %w", constants.MsgAdvertisementGone, apperrors.ErrNotFound)
	}

	if ad.SalaryRange != nil && ad.SalaryRange.ID != 0 {
		if err := s.salaries.Replace(ctx, ad.SalaryRange); err != nil {
			return err
		}
		ad.SalaryRangeID = ad.SalaryRange.ID
	}

	if ad.PositionID != 0 {
		position, err := s.positions.FindByID(ctx, ad.PositionID)
		if err != nil {
			return err
		}
		if position == nil {
			return fmt.Errorf("unknown position %d: %w", ad.PositionID, apperrors.ErrInvalidArgument)
		}
		ad.PositionName = position.Name
	}

	ad.Side = s.side.String()
	if err := s.ads.Replace(ctx, ad); err != nil {
		return err
	}

	s.invalidateCount()
	return nil
}

// Delete cascades children before the parent: the owned salary range,
// favorites referencing the advertisement and offers answering it all
// go first, so a failure mid-way never leaves dangling children behind
// a deleted parent.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	ad, err := s.ads.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if ad == nil {
		return fmt.Errorf("%s: %w", constants.MsgAdvertisementGone, apperrors.ErrNotFound)
	}

	if err := s.salaries.Delete(ctx, ad.SalaryRangeID); err != nil {
		return err
	}
	if err := s.favorites.DeleteByAdvertisement(ctx, id); err != nil {
		return err
	}
	if err := s.offers.DeleteByAdvertisement(ctx, id); err != nil {
		return err
	}
	if err := s.ads.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCount()
	logging.Info("Advertisement deleted", "side", s.side.String(), "ad_id", id)
	return nil
}

func (s *CatalogService) invalidateCount() {
	if s.cache != nil {
		s.cache.Delete(fmt.Sprintf("ads:%s:active_count", s.side))
	}
}

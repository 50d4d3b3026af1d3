package services

import (
	"context"
	"fmt"
	"time"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/db"
	"scoutline/backend/internal/db/repositories"
	"scoutline/backend/internal/logging"
	"scoutline/backend/internal/metrics"
	"scoutline/backend/internal/models/entities"
)

// OfferService is the ledger for one side's offers. An offer always
// answers an advertisement of the opposite side, and an offer is active
// exactly when that advertisement is still active; the offer itself
// carries no expiry.
type OfferService struct {
	side       constants.Side
	offers     repositories.OfferStore
	ads        repositories.AdvertisementStore
	statuses   repositories.OfferStatusStore
	positions  repositories.PositionStore
	users      repositories.UserStore
	alloc      db.SequenceAllocator
	metricsReg *metrics.MetricsRegistry
	now        func() time.Time
}

func NewOfferService(
	side constants.Side,
	offers repositories.OfferStore,
	ads repositories.AdvertisementStore,
	statuses repositories.OfferStatusStore,
	positions repositories.PositionStore,
	users repositories.UserStore,
	alloc db.SequenceAllocator,
	metricsReg *metrics.MetricsRegistry,
	now func() time.Time,
) *OfferService {
	if now == nil {
		now = time.Now
	}
	return &OfferService{
		side:       side,
		offers:     offers,
		ads:        ads,
		statuses:   statuses,
		positions:  positions,
		users:      users,
		alloc:      alloc,
		metricsReg: metricsReg,
		now:        now,
	}
}

func (s *OfferService) Side() constants.Side { return s.side }

func (s *OfferService) Get(ctx context.Context, id int64) (*entities.Offer, error) {
	offer, err := s.offers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, fmt.Errorf("%s: %w", constants.MsgOfferGone, apperrors.ErrNotFound)
	}

	if offer.Advertisement, err = s.ads.FindByID(ctx, offer.AdvertisementID); err != nil {
		return nil, err
	}
	if offer.Offerer, err = s.users.FindByID(ctx, offer.UserID); err != nil {
		return nil, err
	}
	return offer, nil
}

// ListAll returns every offer, newest first
func (s *OfferService) ListAll(ctx context.Context) ([]entities.Offer, error) {
	return s.offers.ListAll(ctx)
}

// ListActive returns the offers whose targeted advertisement is still
// open. Activity is the advertisement's, not the offer's.
func (s *OfferService) ListActive(ctx context.Context) ([]entities.Offer, error) {
	return s.partition(ctx, true)
}

func (s *OfferService) ListInactive(ctx context.Context) ([]entities.Offer, error) {
	return s.partition(ctx, false)
}

func (s *OfferService) CountActive(ctx context.Context) (int64, error) {
	active, err := s.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(active)), nil
}

func (s *OfferService) partition(ctx context.Context, wantActive bool) ([]entities.Offer, error) {
	offers, err := s.offers.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(offers))
	for _, o := range offers {
		ids = append(ids, o.AdvertisementID)
	}
	ads, err := s.ads.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]entities.Advertisement, len(ads))
	for _, ad := range ads {
		byID[ad.ID] = ad
	}

	now := s.now()
	var out []entities.Offer
	for _, o := range offers {
		ad, ok := byID[o.AdvertisementID]
		// An offer whose advertisement is gone counts as inactive
		active := ok && ad.IsActive(now)
		if active == wantActive {
			out = append(out, o)
		}
	}
	return out, nil
}

// Create stamps the creation date and forces the status to Offered by
// seed lookup; a missing seed row is fatal.
func (s *OfferService) Create(ctx context.Context, offer *entities.Offer) error {
	if offer.UserID == "" {
		return fmt.Errorf("offering user is required: %w", apperrors.ErrInvalidArgument)
	}

	ad, err := s.ads.FindByID(ctx, offer.AdvertisementID)
	if err != nil {
		return err
	}
	if ad == nil {
		return fmt.Errorf("advertisement %d: %w", offer.AdvertisementID, apperrors.ErrInvalidArgument)
	}

	offered, err := s.lookupStatus(ctx, constants.StatusOffered)
	if err != nil {
		return err
	}

	position, err := s.positions.FindByID(ctx, offer.PositionID)
	if err != nil {
		return err
	}
	if position == nil {
		return fmt.Errorf("unknown position %d: %w", offer.PositionID, apperrors.ErrInvalidArgument)
	}

	id, err := s.alloc.NextID(ctx, constants.OfferCollection(s.side))
	if err != nil {
		return err
	}

	offer.ID = id
	offer.Side = s.side.String()
	offer.StatusID = offered.ID
	offer.StatusName = offered.Name
	offer.PositionName = position.Name
	offer.CreationDate = s.now()

	if err := s.offers.Insert(ctx, offer); err != nil {
		return err
	}

	logging.Info("Offer created",
		"side", s.side.String(),
		"offer_id", id,
		"advertisement_id", offer.AdvertisementID,
		"user_id", offer.UserID,
	)
	return nil
}

// Update replaces the offer wholesale by id
func (s *OfferService) Update(ctx context.Context, offer *entities.Offer) error {
	offer.Side = s.side.String()
	return s.offers.Replace(ctx, offer)
}

func (s *OfferService) Delete(ctx context.Context, id int64) error {
	return s.offers.Delete(ctx, id)
}

// Accept moves the offer to the Accepted terminal state
func (s *OfferService) Accept(ctx context.Context, id int64) error {
	return s.transition(ctx, id, constants.StatusAccepted)
}

// Reject moves the offer to the Rejected terminal state
func (s *OfferService) Reject(ctx context.Context, id int64) error {
	return s.transition(ctx, id, constants.StatusRejected)
}

// transition applies the state machine: Offered may move to either
// terminal state, re-applying the current terminal state is a no-op,
// and crossing between terminal states is a conflict. Terminal states
// never revert to Offered.
func (s *OfferService) transition(ctx context.Context, id int64, target constants.OfferStatusName) error {
	offer, err := s.offers.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if offer == nil {
		return fmt.Errorf("%s: %w", constants.MsgOfferGone, apperrors.ErrNotFound)
	}

	status, err := s.lookupStatus(ctx, target)
	if err != nil {
		return err
	}

	if offer.StatusName == target.String() {
		return nil
	}
	if offer.StatusName != constants.StatusOffered.String() {
		return fmt.Errorf("offer %d is already %s: %w", id, offer.StatusName, apperrors.ErrConflict)
	}

	if err := s.offers.UpdateStatus(ctx, id, status.ID, status.Name); err != nil {
		return err
	}

	if s.metricsReg != nil {
		s.metricsReg.OfferTransitionsTotal.WithLabelValues(s.side.String(), status.Name).Inc()
	}
	logging.Info("Offer transitioned", "side", s.side.String(), "offer_id", id, "status", status.Name)
	return nil
}

// StatusIdFor returns the status id of the offer a user made against an
// advertisement, or 0 when no such offer exists. Zero is the sentinel
// for "no offer", not an error.
func (s *OfferService) StatusIdFor(ctx context.Context, advertisementID int64, userID string) (int64, error) {
	offer, err := s.offers.FindByAdvertisementAndUser(ctx, advertisementID, userID)
	if err != nil {
		return 0, err
	}
	if offer == nil {
		return 0, nil
	}
	return offer.StatusID, nil
}

func (s *OfferService) lookupStatus(ctx context.Context, name constants.OfferStatusName) (*entities.OfferStatus, error) {
	status, err := s.statuses.FindByName(ctx, name.String())
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, fmt.Errorf("%s (%s): %w", constants.MsgStatusSeedMissing, name, apperrors.ErrConfigurationMissing)
	}
	return status, nil
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/models/entities"
)

func TestOfferCreateStartsOffered(t *testing.T) {
	env := newTestEnv(t)
	player := env.registerUser(t, "player@example.com")
	club := env.registerUser(t, "club@example.com")

	ad := env.createAd(t, env.clubCatalog, club.ID)
	offer := env.createOffer(t, env.playerOffers, ad.ID, player.ID)

	if offer.StatusName != constants.StatusOffered.String() {
		t.Errorf("status = %q, want Offered", offer.StatusName)
	}
	if offer.StatusID == 0 {
		t.Error("expected a resolved status id")
	}
	if !offer.CreationDate.Equal(env.clock.Now()) {
		t.Errorf("creation date = %v, want %v", offer.CreationDate, env.clock.Now())
	}
	if offer.PositionName != "Goalkeeper" {
		t.Errorf("position name = %q, want Goalkeeper", offer.PositionName)
	}
}

func TestOfferCreateRejectsMissingAdvertisement(t *testing.T) {
	env := newTestEnv(t)
	player := env.registerUser(t, "player@example.com")

	err := env.playerOffers.Create(context.Background(), &entities.Offer{
		AdvertisementID: 42,
		PositionID:      1,
		UserID:          player.ID,
	})
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestOfferAcceptIsTerminalAndIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	player := env.registerUser(t, "player@example.com")
	club := env.registerUser(t, "club@example.com")
	ad := env.createAd(t, env.clubCatalog, club.ID)
	offer := env.createOffer(t, env.playerOffers, ad.ID, player.ID)

	if err := env.playerOffers.Accept(ctx, offer.ID); err != nil {
		t.Fatal(err)
	}
	got, _ := env.playerOffers.Get(ctx, offer.ID)
	if got.StatusName != constants.StatusAccepted.String() {
		t.Fatalf("status = %q, want Accepted", got.StatusName)
	}

	// Re-accepting is a no-op
	if err := env.playerOffers.Accept(ctx, offer.ID); err != nil {
		t.Errorf("second accept should be a no-op, got %v", err)
	}

	// Crossing to the other terminal state is a conflict
	err := env.playerOffers.Reject(ctx, offer.ID)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
	got, _ = env.playerOffers.Get(ctx, offer.ID)
	if got.StatusName != constants.StatusAccepted.String() {
		t.Errorf("status changed after rejected transition: %q", got.StatusName)
	}
}

func TestOfferRejectThenAcceptConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	player := env.registerUser(t, "player@example.com")
	club := env.registerUser(t, "club@example.com")
	ad := env.createAd(t, env.clubCatalog, club.ID)
	offer := env.createOffer(t, env.playerOffers, ad.ID, player.ID)

	if err := env.playerOffers.Reject(ctx, offer.ID); err != nil {
		t.Fatal(err)
	}
	if err := env.playerOffers.Reject(ctx, offer.ID); err != nil {
		t.Errorf("second reject should be a no-op, got %v", err)
	}
	if err := env.playerOffers.Accept(ctx, offer.ID); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestOfferTransitionMissingReturnsNotFound(t *testing.T) {
	env := newTestEnv(t)
	if err := env.playerOffers.Accept(context.Background(), 42); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestOfferActivityFollowsAdvertisement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	player := env.registerUser(t, "player@example.com")
	club := env.registerUser(t, "club@example.com")
	ad := env.createAd(t, env.clubCatalog, club.ID)
	env.createOffer(t, env.playerOffers, ad.ID, player.ID)

	active, err := env.playerOffers.ListActive(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 1 {
		t.Fatalf("active = %d, want 1", len(active))
	}

	// The offer has no expiry of its own; it goes inactive with the ad
	env.clock.Advance(31 * 24 * time.Hour)
	active, _ = env.playerOffers.ListActive(ctx)
	if len(active) != 0 {
		t.Errorf("active after ad expiry = %d, want 0", len(active))
	}
	inactive, _ := env.playerOffers.ListInactive(ctx)
	if len(inactive) != 1 {
		t.Errorf("inactive after ad expiry = %d, want 1", len(inactive))
	}
}

func TestOfferWithDeletedAdvertisementCountsInactive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	player := env.registerUser(t, "player@example.com")
	club := env.registerUser(t, "club@example.com")
	ad := env.createAd(t, env.clubCatalog, club.ID)
	offer := env.createOffer(t, env.playerOffers, ad.ID, player.ID)

	// Remove the ad row directly, leaving the offer dangling
	if err := env.store.Advertisements(constants.SideClub).Delete(ctx, ad.ID); err != nil {
		t.Fatal(err)
	}

	active, _ := env.playerOffers.ListActive(ctx)
	if len(active) != 0 {
		t.Errorf("dangling offer listed active")
	}
	inactive, _ := env.playerOffers.ListInactive(ctx)
	if len(inactive) != 1 || inactive[0].ID != offer.ID {
		t.Errorf("dangling offer not listed inactive")
	}
}

func TestOfferStatusIdForReturnsZeroWhenAbsent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	player := env.registerUser(t, "player@example.com")
	club := env.registerUser(t, "club@example.com")
	ad := env.createAd(t, env.clubCatalog, club.ID)

	statusID, err := env.playerOffers.StatusIdFor(ctx, ad.ID, player.ID)
	if err != nil {
		t.Fatal(err)
	}
	if statusID != 0 {
		t.Errorf("status id = %d, want 0 for no offer", statusID)
	}

	offer := env.createOffer(t, env.playerOffers, ad.ID, player.ID)
	statusID, err = env.playerOffers.StatusIdFor(ctx, ad.ID, player.ID)
	if err != nil {
		t.Fatal(err)
	}
	if statusID != offer.StatusID {
		t.Errorf("status id = %d, want %d", statusID, offer.StatusID)
	}
}

func TestOfferGetResolvesAdvertisementAndOfferer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	player := env.registerUser(t, "player@example.com")
	club := env.registerUser(t, "club@example.com")
	ad := env.createAd(t, env.clubCatalog, club.ID)
	offer := env.createOffer(t, env.playerOffers, ad.ID, player.ID)

	got, err := env.playerOffers.Get(ctx, offer.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Advertisement == nil || got.Advertisement.ID != ad.ID {
		t.Error("advertisement not resolved")
	}
	if got.Offerer == nil || got.Offerer.ID != player.ID {
		t.Error("offerer not resolved")
	}
}

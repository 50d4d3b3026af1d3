package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/models/entities"
)

func TestCatalogCreateAssignsWindowAndSalaryRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "player@example.com")

	ad := env.createAd(t, env.playerCatalog, user.ID)

	if ad.ID == 0 {
		t.Fatal("expected an allocated advertisement id")
	}
	if ad.SalaryRangeID == 0 {
		t.Fatal("expected an allocated salary range id")
	}
	if !ad.CreationDate.Equal(env.clock.Now()) {
		t.Errorf("creation date = %v, want %v", ad.CreationDate, env.clock.Now())
	}
	want := env.clock.Now().Add(30 * 24 * time.Hour)
	if !ad.EndDate.Equal(want) {
		t.Errorf("end date = %v, want %v", ad.EndDate, want)
	}
	if ad.PositionName != "Goalkeeper" {
		t.Errorf("position name = %q, want Goalkeeper", ad.PositionName)
	}

	sr, err := env.store.SalaryRanges().FindByID(ctx, ad.SalaryRangeID)
	if err != nil || sr == nil {
		t.Fatalf("salary range row missing: %v", err)
	}
	if sr.Min != 1000 || sr.Max != 5000 {
		t.Errorf("salary range = [%v, %v], want [1000, 5000]", sr.Min, sr.Max)
	}
}

func TestCatalogCreateRejectsMissingSalaryRange(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "player@example.com")

	err := env.playerCatalog.Create(context.Background(), &entities.Advertisement{
		PositionID: 1,
		UserID:     user.ID,
	})
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestCatalogCreateRejectsUnknownPosition(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "player@example.com")

	err := env.playerCatalog.Create(context.Background(), &entities.Advertisement{
		PositionID:  999,
		UserID:      user.ID,
		SalaryRange: &entities.SalaryRange{Min: 1, Max: 2},
	})
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestCatalogActivityFlipsAtExpiry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "player@example.com")
	env.createAd(t, env.playerCatalog, user.ID)

	active, err := env.playerCatalog.ListActive(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 1 {
		t.Fatalf("active = %d, want 1", len(active))
	}

	// Day 30 exactly: still active, the boundary is inclusive
	env.clock.Advance(30 * 24 * time.Hour)
	active, _ = env.playerCatalog.ListActive(ctx)
	if len(active) != 1 {
		t.Errorf("active at end date = %d, want 1", len(active))
	}

	env.clock.Advance(time.Second)
	active, _ = env.playerCatalog.ListActive(ctx)
	if len(active) != 0 {
		t.Errorf("active past end date = %d, want 0", len(active))
	}
	inactive, _ := env.playerCatalog.ListInactive(ctx)
	if len(inactive) != 1 {
		t.Errorf("inactive past end date = %d, want 1", len(inactive))
	}
}

func TestCatalogCountActiveMatchesList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "player@example.com")

	env.createAd(t, env.playerCatalog, user.ID)
	env.clock.Advance(31 * 24 * time.Hour) // first one expires
	env.createAd(t, env.playerCatalog, user.ID)
	env.createAd(t, env.playerCatalog, user.ID)

	count, err := env.playerCatalog.CountActive(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	all, _ := env.playerCatalog.ListAll(ctx)
	active, _ := env.playerCatalog.ListActive(ctx)
	inactive, _ := env.playerCatalog.ListInactive(ctx)
	if len(active)+len(inactive) != len(all) {
		t.Errorf("active (%d) + inactive (%d) != all (%d)", len(active), len(inactive), len(all))
	}
}

func TestCatalogGetResolvesSubDocuments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "player@example.com")
	ad := env.createAd(t, env.playerCatalog, user.ID)

	got, err := env.playerCatalog.Get(ctx, ad.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.SalaryRange == nil || got.SalaryRange.ID != ad.SalaryRangeID {
		t.Error("salary range not resolved")
	}
	if got.Position == nil || got.Position.Name != "Goalkeeper" {
		t.Error("position not resolved")
	}
	if got.Publisher == nil || got.Publisher.ID != user.ID {
		t.Error("publisher not resolved")
	}
}

func TestCatalogGetMissingReturnsNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.playerCatalog.Get(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogUpdateSyncsSalaryRangeRow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "player@example.com")
	ad := env.createAd(t, env.playerCatalog, user.ID)

	ad.SalaryRange = &entities.SalaryRange{ID: ad.SalaryRangeID, Min: 2000, Max: 9000}
	ad.PositionID = 2
	if err := env.playerCatalog.Update(ctx, ad); err != nil {
		t.Fatal(err)
	}

	sr, _ := env.store.SalaryRanges().FindByID(ctx, ad.SalaryRangeID)
	if sr.Min != 2000 || sr.Max != 9000 {
		t.Errorf("salary range row = [%v, %v], want [2000, 9000]", sr.Min, sr.Max)
	}

	got, _ := env.playerCatalog.Get(ctx, ad.ID)
	if got.PositionName != "RightBack" {
		t.Errorf("position name = %q, want RightBack", got.PositionName)
	}
}

func TestCatalogDeleteCascadesChildren(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	player := env.registerUser(t, "player@example.com")
	club := env.registerUser(t, "club@example.com")
	fan := env.registerUser(t, "fan@example.com")

	ad := env.createAd(t, env.playerCatalog, player.ID)
	// A club answers a player advertisement
	env.createOffer(t, env.clubOffers, ad.ID, club.ID)
	if _, err := env.playerFavs.Add(ctx, ad.ID, fan.ID); err != nil {
		t.Fatal(err)
	}

	if err := env.playerCatalog.Delete(ctx, ad.ID); err != nil {
		t.Fatal(err)
	}

	if sr, _ := env.store.SalaryRanges().FindByID(ctx, ad.SalaryRangeID); sr != nil {
		t.Error("salary range survived the cascade")
	}
	if fav, _ := env.store.Favorites(env.playerFavs.Side()).FindByPair(ctx, ad.ID, fan.ID); fav != nil {
		t.Error("favorite survived the cascade")
	}
	offers, _ := env.clubOffers.ListAll(ctx)
	if len(offers) != 0 {
		t.Errorf("offers survived the cascade: %d", len(offers))
	}
	if _, err := env.playerCatalog.Get(ctx, ad.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCatalogDeleteMissingReturnsNotFound(t *testing.T) {
	env := newTestEnv(t)
	err := env.playerCatalog.Delete(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

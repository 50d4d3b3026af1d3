package services

import (
	"context"
	"errors"
	"testing"

	"scoutline/backend/internal/apperrors"
)

func TestFavoriteAddIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	player := env.registerUser(t, "player@example.com")
	fan := env.registerUser(t, "fan@example.com")
	ad := env.createAd(t, env.playerCatalog, player.ID)

	id1, err := env.playerFavs.Add(ctx, ad.ID, fan.ID)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := env.playerFavs.Add(ctx, ad.ID, fan.ID)
	if err != nil {
		t.Fatal(err)
	}
	if id1 != id2 {
		t.Errorf("second add created a new row: %d != %d", id1, id2)
	}

	favs, _ := env.playerFavs.ListByUser(ctx, fan.ID)
	if len(favs) != 1 {
		t.Errorf("favorites = %d, want 1", len(favs))
	}
}

func TestFavoriteAddRejectsMissingAdvertisement(t *testing.T) {
	env := newTestEnv(t)
	fan := env.registerUser(t, "fan@example.com")

	_, err := env.playerFavs.Add(context.Background(), 42, fan.ID)
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestFavoriteCheckAndRemove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	player := env.registerUser(t, "player@example.com")
	fan := env.registerUser(t, "fan@example.com")
	ad := env.createAd(t, env.playerCatalog, player.ID)

	got, err := env.playerFavs.CheckFavorite(ctx, ad.ID, fan.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("check before add = %d, want 0", got)
	}

	id, err := env.playerFavs.Add(ctx, ad.ID, fan.ID)
	if err != nil {
		t.Fatal(err)
	}

	got, _ = env.playerFavs.CheckFavorite(ctx, ad.ID, fan.ID)
	if got != id {
		t.Errorf("check after add = %d, want %d", got, id)
	}

	if err := env.playerFavs.Remove(ctx, id); err != nil {
		t.Fatal(err)
	}
	if err := env.playerFavs.Remove(ctx, id); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound on double remove, got %v", err)
	}

	got, _ = env.playerFavs.CheckFavorite(ctx, ad.ID, fan.ID)
	if got != 0 {
		t.Errorf("check after remove = %d, want 0", got)
	}
}

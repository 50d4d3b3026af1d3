package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/models/entities"
)

func TestClubHistoryCreateOwnsAchievementsRow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	player := env.registerUser(t, "player@example.com")

	history := &entities.ClubHistory{
		PlayerID:  player.ID,
		ClubName:  "Old FC",
		League:    "First Division",
		StartDate: env.clock.Now().Add(-2 * 365 * 24 * time.Hour),
		EndDate:   env.clock.Now().Add(-365 * 24 * time.Hour),
		Achievements: &entities.Achievements{
			NumberOfMatches: 40,
			Goals:           12,
			Assists:         7,
		},
	}
	if err := env.histories.Create(ctx, history); err != nil {
		t.Fatal(err)
	}
	if history.AchievementsID == 0 {
		t.Fatal("expected an allocated achievements id")
	}

	got, err := env.histories.Get(ctx, history.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Achievements == nil || got.Achievements.Goals != 12 {
		t.Error("achievements not resolved on read")
	}
}

func TestClubHistoryCreateRequiresPlayer(t *testing.T) {
	env := newTestEnv(t)
	err := env.histories.Create(context.Background(), &entities.ClubHistory{ClubName: "No Owner FC"})
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestClubHistoryDeleteRemovesAchievements(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	player := env.registerUser(t, "player@example.com")

	history := &entities.ClubHistory{PlayerID: player.ID, ClubName: "Old FC"}
	if err := env.histories.Create(ctx, history); err != nil {
		t.Fatal(err)
	}

	if err := env.histories.Delete(ctx, history.ID); err != nil {
		t.Fatal(err)
	}
	if a, _ := env.store.Achievements().FindByID(ctx, history.AchievementsID); a != nil {
		t.Error("achievements row survived history delete")
	}
	if _, err := env.histories.Get(ctx, history.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClubHistoryListByPlayerNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	player := env.registerUser(t, "player@example.com")

	for i, club := range []string{"First FC", "Second FC"} {
		h := &entities.ClubHistory{
			PlayerID:  player.ID,
			ClubName:  club,
			StartDate: env.clock.Now().Add(time.Duration(i) * 24 * time.Hour),
		}
		if err := env.histories.Create(ctx, h); err != nil {
			t.Fatal(err)
		}
	}

	out, err := env.histories.ListByPlayer(ctx, player.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("histories = %d, want 2", len(out))
	}
	if out[0].ClubName != "Second FC" {
		t.Errorf("first entry = %q, want the most recent spell", out[0].ClubName)
	}
}

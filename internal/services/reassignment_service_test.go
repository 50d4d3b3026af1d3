package services

import (
	"context"
	"testing"
	"time"

	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/models/entities"
)

// buildLeaverFixture creates a user with footprints in every collection
// the cascade touches
func buildLeaverFixture(t *testing.T, env *testEnv) (leaver, other *entities.User, ownAd, otherAd *entities.Advertisement) {
	t.Helper()
	ctx := context.Background()

	leaver = env.registerUser(t, "leaver@example.com")
	other = env.registerUser(t, "other@example.com")

	ownAd = env.createAd(t, env.playerCatalog, leaver.ID)
	otherAd = env.createAd(t, env.clubCatalog, other.ID)

	// The leaver answers the other user's club advertisement
	env.createOffer(t, env.playerOffers, otherAd.ID, leaver.ID)

	// The leaver favorited their own side's listing
	if _, err := env.playerFavs.Add(ctx, ownAd.ID, leaver.ID); err != nil {
		t.Fatal(err)
	}

	// Club history with achievements
	if err := env.histories.Create(ctx, &entities.ClubHistory{
		PlayerID:  leaver.ID,
		ClubName:  "Old FC",
		StartDate: env.clock.Now().Add(-365 * 24 * time.Hour),
		EndDate:   env.clock.Now(),
	}); err != nil {
		t.Fatal(err)
	}

	// An open chat with the other user
	chat, err := env.chats.OpenChat(ctx, leaver.ID, other.ID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := env.chats.SendMessage(ctx, chat.ID, leaver.ID, "hello"); err != nil {
		t.Fatal(err)
	}

	return leaver, other, ownAd, otherAd
}

func TestReassignDeleteLeavesNoDanglingReferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	leaver, other, ownAd, _ := buildLeaverFixture(t, env)

	if err := env.reassignment.Reassign(ctx, leaver.ID, entities.CascadeDelete, nil); err != nil {
		t.Fatal(err)
	}

	// User row and role bindings gone
	if u, _ := env.store.Users().FindByID(ctx, leaver.ID); u != nil {
		t.Error("user row survived delete cascade")
	}
	if bindings, _ := env.store.UserRoles().ListByUser(ctx, leaver.ID); len(bindings) != 0 {
		t.Error("role bindings survived delete cascade")
	}

	// Their advertisement is repointed to the sentinel and closed
	ad, _ := env.store.Advertisements(constants.SidePlayer).FindByID(ctx, ownAd.ID)
	if ad == nil {
		t.Fatal("advertisement deleted; the cascade reassigns, not deletes")
	}
	if ad.UserID != env.sentinelID {
		t.Errorf("advertisement publisher = %s, want sentinel", ad.UserID)
	}
	if ad.IsActive(env.clock.Now().Add(time.Second)) {
		t.Error("advertisement still active")
	}

	// Their open offer is rejected and repointed to the sentinel
	offers, _ := env.store.Offers(constants.SidePlayer).ListByUser(ctx, env.sentinelID)
	if len(offers) != 1 {
		t.Fatalf("sentinel offers = %d, want 1", len(offers))
	}
	if offers[0].StatusName != constants.StatusRejected.String() {
		t.Errorf("offer status = %q, want Rejected", offers[0].StatusName)
	}

	// Favorites and histories purged
	if favs, _ := env.store.Favorites(constants.SidePlayer).ListByUser(ctx, leaver.ID); len(favs) != 0 {
		t.Error("favorites survived delete cascade")
	}
	if hs, _ := env.store.ClubHistories().ListByPlayer(ctx, leaver.ID); len(hs) != 0 {
		t.Error("club histories survived delete cascade")
	}

	// Chats with the leaver are gone for both participants
	if chats, _ := env.store.Chats().ListByParticipant(ctx, other.ID); len(chats) != 0 {
		t.Error("chats survived delete cascade")
	}
}

func TestReassignRoleSwapKeepsUserAndChats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	leaver, other, _, _ := buildLeaverFixture(t, env)

	if err := env.reassignment.Reassign(ctx, leaver.ID, entities.CascadeRoleSwap, nil); err != nil {
		t.Fatal(err)
	}

	if u, _ := env.store.Users().FindByID(ctx, leaver.ID); u == nil {
		t.Error("user row deleted by role swap cascade")
	}
	if chats, _ := env.store.Chats().ListByParticipant(ctx, other.ID); len(chats) != 1 {
		t.Error("chats deleted by role swap cascade")
	}

	// The market footprint is still reassigned
	if favs, _ := env.store.Favorites(constants.SidePlayer).ListByUser(ctx, leaver.ID); len(favs) != 0 {
		t.Error("favorites survived role swap cascade")
	}
	ads, _ := env.store.Advertisements(constants.SidePlayer).ListByUser(ctx, leaver.ID)
	if len(ads) != 0 {
		t.Error("advertisements still owned by the user after role swap cascade")
	}
}

func TestReassignResumeSkipsCompletedSteps(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	leaver, _, ownAd, _ := buildLeaverFixture(t, env)

	// Simulate a crash: a run journal exists with the expire step already
	// recorded, and the ad was already repointed by that earlier attempt.
	ad, _ := env.store.Advertisements(constants.SidePlayer).FindByID(ctx, ownAd.ID)
	ad.UserID = env.sentinelID
	ad.EndDate = env.clock.Now()
	if err := env.store.Advertisements(constants.SidePlayer).Replace(ctx, ad); err != nil {
		t.Fatal(err)
	}
	if err := env.store.CascadeRuns().Insert(ctx, &entities.CascadeRun{
		ID:        "crashed-run",
		UserID:    leaver.ID,
		Mode:      entities.CascadeDelete,
		StepsDone: []string{stepPurgeHistories, stepPurgeFavorites, stepExpirePlayerAds},
		StartedAt: env.clock.Now(),
	}); err != nil {
		t.Fatal(err)
	}

	if err := env.reassignment.Reassign(ctx, leaver.ID, entities.CascadeDelete, nil); err != nil {
		t.Fatal(err)
	}

	// The resumed run finished the remaining steps
	if u, _ := env.store.Users().FindByID(ctx, leaver.ID); u != nil {
		t.Error("user row survived resumed cascade")
	}
	// And no second run was opened
	if run, _ := env.store.CascadeRuns().FindOpenByUser(ctx, leaver.ID); run != nil {
		t.Error("an open run remains after completion")
	}
}

func TestReassignIsRepeatableAfterCompletion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	leaver, _, _, _ := buildLeaverFixture(t, env)

	if err := env.reassignment.Reassign(ctx, leaver.ID, entities.CascadeRoleSwap, nil); err != nil {
		t.Fatal(err)
	}
	// A second full run over an already-clean user must not fail
	if err := env.reassignment.Reassign(ctx, leaver.ID, entities.CascadeRoleSwap, nil); err != nil {
		t.Errorf("re-running the cascade failed: %v", err)
	}
}

func TestReassignAcceptedOfferKeepsStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	leaver := env.registerUser(t, "leaver@example.com")
	club := env.registerUser(t, "club@example.com")
	ad := env.createAd(t, env.clubCatalog, club.ID)
	offer := env.createOffer(t, env.playerOffers, ad.ID, leaver.ID)

	if err := env.playerOffers.Accept(ctx, offer.ID); err != nil {
		t.Fatal(err)
	}
	if err := env.reassignment.Reassign(ctx, leaver.ID, entities.CascadeDelete, nil); err != nil {
		t.Fatal(err)
	}

	// Terminal states never revert: only Offered flips to Rejected
	got, _ := env.store.Offers(constants.SidePlayer).FindByID(ctx, offer.ID)
	if got.StatusName != constants.StatusAccepted.String() {
		t.Errorf("status = %q, want Accepted preserved", got.StatusName)
	}
	if got.UserID != env.sentinelID {
		t.Errorf("offer user = %s, want sentinel", got.UserID)
	}
}

func TestReassignFinalizeRunsBeforeCompletion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	leaver := env.registerUser(t, "leaver@example.com")

	called := false
	err := env.reassignment.Reassign(ctx, leaver.ID, entities.CascadeRoleSwap, func(context.Context) error {
		called = true
		// The journal must still be open while finalize runs
		run, err := env.store.CascadeRuns().FindOpenByUser(ctx, leaver.ID)
		if err != nil || run == nil {
			t.Error("no open run during finalize")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("finalize was not called")
	}
	if run, _ := env.store.CascadeRuns().FindOpenByUser(ctx, leaver.ID); run != nil {
		t.Error("run left open after completion")
	}
}

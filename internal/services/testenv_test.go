package services

import (
	"context"
	"testing"
	"time"

	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/db/memstore"
	"scoutline/backend/internal/models/entities"
)

// fakeClock lets tests move time forward past advertisement expiry
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type testEnv struct {
	store *memstore.Store
	clock *fakeClock

	identity     *IdentityService
	reassignment *ReassignmentService

	playerCatalog *CatalogService
	clubCatalog   *CatalogService
	playerOffers  *OfferService
	clubOffers    *OfferService
	playerFavs    *FavoritesService
	clubFavs      *FavoritesService

	problems  *ProblemService
	histories *ClubHistoryService
	chats     *ChatService

	sentinelID string
}

// newTestEnv builds the full service graph over the in-memory store and
// seeds roles, offer statuses, positions and the sentinel user the way
// startup does.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	store := memstore.New()
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}

	for _, name := range []string{constants.RoleAdmin.String(), constants.RoleUser.String()} {
		id, _ := store.NextID(ctx, constants.CollRoles)
		if err := store.Roles().Insert(ctx, &entities.Role{ID: id, Name: name}); err != nil {
			t.Fatalf("seed role %s: %v", name, err)
		}
	}
	for _, name := range []string{
		constants.StatusOffered.String(),
		constants.StatusAccepted.String(),
		constants.StatusRejected.String(),
	} {
		id, _ := store.NextID(ctx, constants.CollOfferStatuses)
		if err := store.OfferStatuses().Insert(ctx, &entities.OfferStatus{ID: id, Name: name}); err != nil {
			t.Fatalf("seed status %s: %v", name, err)
		}
	}
	for _, name := range constants.PlayerPositions {
		id, _ := store.NextID(ctx, constants.CollPositions)
		if err := store.Positions().Insert(ctx, &entities.PlayerPosition{ID: id, Name: name}); err != nil {
			t.Fatalf("seed position %s: %v", name, err)
		}
	}

	sentinel := &entities.User{
		ID:           "sentinel-id",
		Email:        constants.SentinelEmail,
		FirstName:    "Unknown",
		LastName:     "Unknown",
		CreationDate: clock.Now(),
	}
	if err := store.Users().Insert(ctx, sentinel); err != nil {
		t.Fatalf("seed sentinel: %v", err)
	}

	reassignment := NewReassignmentService(
		store.Users(), store.UserRoles(),
		store.ClubHistories(), store.Achievements(),
		store.Favorites(constants.SidePlayer), store.Favorites(constants.SideClub),
		store.Advertisements(constants.SidePlayer), store.Advertisements(constants.SideClub),
		store.Offers(constants.SidePlayer), store.Offers(constants.SideClub),
		store.OfferStatuses(),
		store.Chats(), store.Messages(),
		store.CascadeRuns(),
		nil, clock.Now,
	)

	env := &testEnv{
		store:        store,
		clock:        clock,
		reassignment: reassignment,
		identity: NewIdentityService(
			store.Users(), store.Roles(), store.UserRoles(),
			store, reassignment, BcryptHasher{}, clock.Now,
		),
		playerCatalog: NewCatalogService(
			constants.SidePlayer,
			store.Advertisements(constants.SidePlayer),
			store.SalaryRanges(), store.Positions(), store.Users(),
			store.Favorites(constants.SidePlayer),
			store.Offers(constants.SideClub),
			store, nil, clock.Now,
		),
		clubCatalog: NewCatalogService(
			constants.SideClub,
			store.Advertisements(constants.SideClub),
			store.SalaryRanges(), store.Positions(), store.Users(),
			store.Favorites(constants.SideClub),
			store.Offers(constants.SidePlayer),
			store, nil, clock.Now,
		),
		playerOffers: NewOfferService(
			constants.SidePlayer,
			store.Offers(constants.SidePlayer),
			store.Advertisements(constants.SideClub),
			store.OfferStatuses(), store.Positions(), store.Users(),
			store, nil, clock.Now,
		),
		clubOffers: NewOfferService(
			constants.SideClub,
			store.Offers(constants.SideClub),
			store.Advertisements(constants.SidePlayer),
			store.OfferStatuses(), store.Positions(), store.Users(),
			store, nil, clock.Now,
		),
		playerFavs: NewFavoritesService(
			constants.SidePlayer,
			store.Favorites(constants.SidePlayer),
			store.Advertisements(constants.SidePlayer),
			store,
		),
		clubFavs: NewFavoritesService(
			constants.SideClub,
			store.Favorites(constants.SideClub),
			store.Advertisements(constants.SideClub),
			store,
		),
		problems:   NewProblemService(store.Problems(), store, clock.Now),
		histories:  NewClubHistoryService(store.ClubHistories(), store.Achievements(), store),
		chats:      NewChatService(store.Chats(), store.Messages(), store.Users(), store, clock.Now),
		sentinelID: sentinel.ID,
	}
	return env
}

// registerUser creates a user through the identity service and returns it
func (env *testEnv) registerUser(t *testing.T, email string) *entities.User {
	t.Helper()
	user := &entities.User{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
	}
	if err := env.identity.Register(context.Background(), user, "secret-password"); err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return user
}

// createAd publishes an advertisement on the given catalog
func (env *testEnv) createAd(t *testing.T, catalog *CatalogService, userID string) *entities.Advertisement {
	t.Helper()
	ad := &entities.Advertisement{
		PositionID:  1,
		League:      "Premier League",
		ClubName:    "Test FC",
		UserID:      userID,
		SalaryRange: &entities.SalaryRange{Min: 1000, Max: 5000},
	}
	if err := catalog.Create(context.Background(), ad); err != nil {
		t.Fatalf("create advertisement: %v", err)
	}
	return ad
}

// createOffer answers an advertisement on the given offer service
func (env *testEnv) createOffer(t *testing.T, offers *OfferService, adID int64, userID string) *entities.Offer {
	t.Helper()
	offer := &entities.Offer{
		AdvertisementID: adID,
		PositionID:      1,
		UserID:          userID,
	}
	if err := offers.Create(context.Background(), offer); err != nil {
		t.Fatalf("create offer: %v", err)
	}
	return offer
}

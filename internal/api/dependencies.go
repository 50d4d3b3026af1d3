package api

import (
	"os"

	"scoutline/backend/internal/common"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/db"
	"scoutline/backend/internal/db/repositories"
	"scoutline/backend/internal/logging"
	"scoutline/backend/internal/metrics"
	"scoutline/backend/internal/services"
)

type Repositories struct {
	Users        *repositories.UserRepository
	Roles        *repositories.RoleRepository
	UserRoles    *repositories.UserRoleRepository
	Positions    *repositories.PositionRepository
	SalaryRanges *repositories.SalaryRangeRepository
	Statuses     *repositories.OfferStatusRepository

	PlayerAds    *repositories.AdvertisementRepository
	ClubAds      *repositories.AdvertisementRepository
	PlayerOffers *repositories.OfferRepository
	ClubOffers   *repositories.OfferRepository
	PlayerFavs   *repositories.FavoriteRepository
	ClubFavs     *repositories.FavoriteRepository

	Problems     *repositories.ProblemRepository
	Histories    *repositories.ClubHistoryRepository
	Achievements *repositories.AchievementsRepository
	Chats        *repositories.ChatRepository
	Messages     *repositories.MessageRepository
	CascadeRuns  *repositories.CascadeRunRepository
}

type Services struct {
	Cache        common.CacheInterface
	Identity     *services.IdentityService
	Reassignment *services.ReassignmentService

	PlayerCatalog *services.CatalogService
	ClubCatalog   *services.CatalogService

	PlayerOffers *services.OfferService
	ClubOffers   *services.OfferService

	PlayerFavorites *services.FavoritesService
	ClubFavorites   *services.FavoritesService

	Problems  *services.ProblemService
	Histories *services.ClubHistoryService
	Chats     *services.ChatService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories and services against the live
// database. A side-bound service of one side always gets the opposite
// side's stores where the domain crosses the market: offers answer the
// other side's advertisements.
func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	database := db.Database
	alloc := db.NewMongoSequenceAllocator(database)

	repo := &Repositories{
		Users:        repositories.NewUserRepository(database),
		Roles:        repositories.NewRoleRepository(database),
		UserRoles:    repositories.NewUserRoleRepository(database),
		Positions:    repositories.NewPositionRepository(database),
		SalaryRanges: repositories.NewSalaryRangeRepository(database),
		Statuses:     repositories.NewOfferStatusRepository(database),

		PlayerAds:    repositories.NewAdvertisementRepository(database, constants.SidePlayer),
		ClubAds:      repositories.NewAdvertisementRepository(database, constants.SideClub),
		PlayerOffers: repositories.NewOfferRepository(database, constants.SidePlayer),
		ClubOffers:   repositories.NewOfferRepository(database, constants.SideClub),
		PlayerFavs:   repositories.NewFavoriteRepository(database, constants.SidePlayer),
		ClubFavs:     repositories.NewFavoriteRepository(database, constants.SideClub),

		Problems:     repositories.NewProblemRepository(database),
		Histories:    repositories.NewClubHistoryRepository(database),
		Achievements: repositories.NewAchievementsRepository(database),
		Chats:        repositories.NewChatRepository(database),
		Messages:     repositories.NewMessageRepository(database),
		CascadeRuns:  repositories.NewCascadeRunRepository(database),
	}

	var cache common.CacheInterface
	if os.Getenv("REDIS_HOST") != "" {
		redisCache, err := common.NewRedisCacheService()
		if err != nil {
			logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
			cache = common.NewCacheService(60, 600)
		} else {
			cache = redisCache
		}
	} else {
		cache = common.NewCacheService(60, 600)
	}

	reassignment := services.NewReassignmentService(
		repo.Users, repo.UserRoles,
		repo.Histories, repo.Achievements,
		repo.PlayerFavs, repo.ClubFavs,
		repo.PlayerAds, repo.ClubAds,
		repo.PlayerOffers, repo.ClubOffers,
		repo.Statuses,
		repo.Chats, repo.Messages,
		repo.CascadeRuns,
		metricsReg, nil,
	)

	svcs := &Services{
		Cache:        cache,
		Reassignment: reassignment,
		Identity: services.NewIdentityService(
			repo.Users, repo.Roles, repo.UserRoles,
			alloc, reassignment, services.BcryptHasher{}, nil,
		),

		// A player advertisement is answered by club offers and vice versa
		PlayerCatalog: services.NewCatalogService(
			constants.SidePlayer,
			repo.PlayerAds, repo.SalaryRanges, repo.Positions, repo.Users,
			repo.PlayerFavs, repo.ClubOffers,
			alloc, cache, nil,
		),
		ClubCatalog: services.NewCatalogService(
			constants.SideClub,
			repo.ClubAds, repo.SalaryRanges, repo.Positions, repo.Users,
			repo.ClubFavs, repo.PlayerOffers,
			alloc, cache, nil,
		),

		PlayerOffers: services.NewOfferService(
			constants.SidePlayer,
			repo.PlayerOffers, repo.ClubAds, repo.Statuses,
			repo.Positions, repo.Users,
			alloc, metricsReg, nil,
		),
		ClubOffers: services.NewOfferService(
			constants.SideClub,
			repo.ClubOffers, repo.PlayerAds, repo.Statuses,
			repo.Positions, repo.Users,
			alloc, metricsReg, nil,
		),

		PlayerFavorites: services.NewFavoritesService(
			constants.SidePlayer, repo.PlayerFavs, repo.PlayerAds, alloc,
		),
		ClubFavorites: services.NewFavoritesService(
			constants.SideClub, repo.ClubFavs, repo.ClubAds, alloc,
		),

		Problems:  services.NewProblemService(repo.Problems, alloc, nil),
		Histories: services.NewClubHistoryService(repo.Histories, repo.Achievements, alloc),
		Chats:     services.NewChatService(repo.Chats, repo.Messages, repo.Users, alloc, nil),
	}

	return &Dependencies{Repo: repo, Services: svcs}, nil
}

// CatalogFor returns the side-bound catalog service
func (d *Dependencies) CatalogFor(side constants.Side) *services.CatalogService {
	if side == constants.SidePlayer {
		return d.Services.PlayerCatalog
	}
	return d.Services.ClubCatalog
}

// OffersFor returns the side-bound offer service
func (d *Dependencies) OffersFor(side constants.Side) *services.OfferService {
	if side == constants.SidePlayer {
		return d.Services.PlayerOffers
	}
	return d.Services.ClubOffers
}

// FavoritesFor returns the side-bound favorites service
func (d *Dependencies) FavoritesFor(side constants.Side) *services.FavoritesService {
	if side == constants.SidePlayer {
		return d.Services.PlayerFavorites
	}
	return d.Services.ClubFavorites
}

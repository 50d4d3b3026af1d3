package routes

import (
	"scoutline/backend/internal/api"
	"scoutline/backend/internal/metrics"
	"scoutline/backend/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// Advertisement, offer and favorite subtrees are parameterized on the
// market side; the handlers resolve {side} to the bound service.
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies) {

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))

		// Users and roles
		v1.Post("/users", api.RegisterUserHandler(deps.Services.Identity))
		v1.Get("/users/{user_id}", api.GetUserHandler(deps.Services.Identity))
		v1.Delete("/users/{user_id}", api.DeleteUserHandler(deps.Services.Identity))
		v1.Get("/users/{user_id}/roles", api.GetUserRolesHandler(deps.Services.Identity))
		v1.Post("/users/{user_id}/promote", api.PromoteUserHandler(deps.Services.Identity))
		v1.Post("/users/{user_id}/demote", api.DemoteUserHandler(deps.Services.Identity))
		v1.Get("/roles/{role_name}/users", api.UsersWithRoleHandler(deps.Services.Identity))

		// Position vocabulary
		v1.Get("/positions", api.ListPositionsHandler(deps.Repo.Positions))

		// Advertisements, both sides
		v1.Route("/advertisements/{side}", func(ads chi.Router) {
			ads.Get("/", api.ListAdvertisementsHandler(deps))
			ads.Post("/", api.CreateAdvertisementHandler(deps))
			ads.Get("/count", api.CountActiveAdvertisementsHandler(deps))
			ads.Get("/{id}", api.GetAdvertisementHandler(deps))
			ads.Put("/{id}", api.UpdateAdvertisementHandler(deps))
			ads.Delete("/{id}", api.DeleteAdvertisementHandler(deps))
		})

		// Offers, both sides
		v1.Route("/offers/{side}", func(offers chi.Router) {
			offers.Get("/", api.ListOffersHandler(deps))
			offers.Post("/", api.CreateOfferHandler(deps))
			offers.Get("/count", api.CountActiveOffersHandler(deps))
			offers.Get("/status", api.OfferStatusForHandler(deps))
			offers.Get("/{id}", api.GetOfferHandler(deps))
			offers.Put("/{id}", api.UpdateOfferHandler(deps))
			offers.Delete("/{id}", api.DeleteOfferHandler(deps))
			offers.Post("/{id}/accept", api.AcceptOfferHandler(deps))
			offers.Post("/{id}/reject", api.RejectOfferHandler(deps))
		})

		// Favorites, both sides
		v1.Route("/favorites/{side}", func(favs chi.Router) {
			favs.Post("/", api.AddFavoriteHandler(deps))
			favs.Get("/check", api.CheckFavoriteHandler(deps))
			favs.Get("/user/{user_id}", api.ListFavoritesHandler(deps))
			favs.Delete("/{id}", api.RemoveFavoriteHandler(deps))
		})

		// Problems
		v1.Post("/problems", api.ReportProblemHandler(deps.Services.Problems))
		v1.Get("/problems", api.ListProblemsHandler(deps.Services.Problems))
		v1.Get("/problems/{id}", api.GetProblemHandler(deps.Services.Problems))
		v1.Post("/problems/{id}/resolve", api.ResolveProblemHandler(deps.Services.Problems))

		// Club histories
		v1.Post("/club-histories", api.CreateClubHistoryHandler(deps.Services.Histories))
		v1.Get("/club-histories/{id}", api.GetClubHistoryHandler(deps.Services.Histories))
		v1.Delete("/club-histories/{id}", api.DeleteClubHistoryHandler(deps.Services.Histories))
		v1.Get("/club-histories/player/{user_id}", api.ListClubHistoriesHandler(deps.Services.Histories))

		// Chats
		v1.Post("/chats", api.OpenChatHandler(deps.Services.Chats))
		v1.Get("/chats/user/{user_id}", api.ListChatsHandler(deps.Services.Chats))
		v1.Get("/chats/{id}/messages", api.ListMessagesHandler(deps.Services.Chats))
		v1.Post("/chats/{id}/messages", api.SendMessageHandler(deps.Services.Chats))
		v1.Delete("/chats/{id}", api.DeleteChatHandler(deps.Services.Chats))
	})
}

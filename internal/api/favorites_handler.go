package api

import (
	"encoding/json"
	"net/http"

	"scoutline/backend/internal/services"

	"github.com/go-chi/chi/v5"
)

func favoritesFor(deps *Dependencies, w http.ResponseWriter, r *http.Request) *services.FavoritesService {
	side, ok := sideFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "side must be player or club")
		return nil
	}
	return deps.FavoritesFor(side)
}

type addFavoriteRequest struct {
	AdvertisementID int64  `json:"advertisementId"`
	UserID          string `json:"userId"`
}

// AddFavoriteHandler handles POST /favorites/{side}. Adding an existing
// pair returns the existing favorite id.
func AddFavoriteHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		favorites := favoritesFor(deps, w, r)
		if favorites == nil {
			return
		}

		var req addFavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		id, err := favorites.Add(r.Context(), req.AdvertisementID, req.UserID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, &id)
	}
}

// RemoveFavoriteHandler handles DELETE /favorites/{side}/{id}
func RemoveFavoriteHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		favorites := favoritesFor(deps, w, r)
		if favorites == nil {
			return
		}
		id, ok := idFromRequest(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid favorite id")
			return
		}

		if err := favorites.Remove(r.Context(), id); err != nil {
			respondWithServiceError(w, err)
			return
		}
		msg := "removed"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// CheckFavoriteHandler handles GET /favorites/{side}/check. Returns the
// favorite id for the pair, 0 when the user has not favorited it.
func CheckFavoriteHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		favorites := favoritesFor(deps, w, r)
		if favorites == nil {
			return
		}

		adID, err := parseQueryID(r, "advertisement_id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid advertisement_id")
			return
		}
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			respondWithError(w, http.StatusBadRequest, "user_id is required")
			return
		}

		id, err := favorites.CheckFavorite(r.Context(), adID, userID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &id)
	}
}

// ListFavoritesHandler handles GET /favorites/{side}/user/{user_id}
func ListFavoritesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		favorites := favoritesFor(deps, w, r)
		if favorites == nil {
			return
		}

		out, err := favorites.ListByUser(r.Context(), chi.URLParam(r, "user_id"))
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &out)
	}
}

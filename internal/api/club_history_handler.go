package api

import (
	"encoding/json"
	"net/http"

	"scoutline/backend/internal/models/entities"
	"scoutline/backend/internal/services"

	"github.com/go-chi/chi/v5"
)

// CreateClubHistoryHandler handles POST /club-histories
func CreateClubHistoryHandler(histories *services.ClubHistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var history entities.ClubHistory
		if err := json.NewDecoder(r.Body).Decode(&history); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := histories.Create(r.Context(), &history); err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, &history)
	}
}

// GetClubHistoryHandler handles GET /club-histories/{id}
func GetClubHistoryHandler(histories *services.ClubHistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idFromRequest(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid club history id")
			return
		}

		history, err := histories.Get(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, history)
	}
}

// ListClubHistoriesHandler handles GET /club-histories/player/{user_id}
func ListClubHistoriesHandler(histories *services.ClubHistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := histories.ListByPlayer(r.Context(), chi.URLParam(r, "user_id"))
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &out)
	}
}

// DeleteClubHistoryHandler handles DELETE /club-histories/{id}
func DeleteClubHistoryHandler(histories *services.ClubHistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idFromRequest(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid club history id")
			return
		}

		if err := histories.Delete(r.Context(), id); err != nil {
			respondWithServiceError(w, err)
			return
		}
		msg := "deleted"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

package api

import (
	"net/http"

	"scoutline/backend/internal/db/repositories"
)

// ListPositionsHandler handles GET /positions, returning the seeded
// player position vocabulary
func ListPositionsHandler(positions repositories.PositionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := positions.ListAll(r.Context())
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &out)
	}
}

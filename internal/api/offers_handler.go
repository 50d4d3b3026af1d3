package api

import (
	"encoding/json"
	"net/http"

	"scoutline/backend/internal/models/entities"
	"scoutline/backend/internal/services"
)

func offersFor(deps *Dependencies, w http.ResponseWriter, r *http.Request) *services.OfferService {
	side, ok := sideFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "side must be player or club")
		return nil
	}
	return deps.OffersFor(side)
}

// GetOfferHandler handles GET /offers/{side}/{id}
func GetOfferHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offers := offersFor(deps, w, r)
		if offers == nil {
			return
		}
		id, ok := idFromRequest(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid offer id")
			return
		}

		offer, err := offers.Get(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, offer)
	}
}

// ListOffersHandler handles GET /offers/{side} with an optional
// ?state=active|inactive filter. An offer is active exactly when its
// targeted advertisement is still open.
func ListOffersHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offers := offersFor(deps, w, r)
		if offers == nil {
			return
		}

		var (
			out []entities.Offer
			err error
		)
		switch r.URL.Query().Get("state") {
		case "active":
			out, err = offers.ListActive(r.Context())
		case "inactive":
			out, err = offers.ListInactive(r.Context())
		default:
			out, err = offers.ListAll(r.Context())
		}
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &out)
	}
}

// CountActiveOffersHandler handles GET /offers/{side}/count
func CountActiveOffersHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offers := offersFor(deps, w, r)
		if offers == nil {
			return
		}

		count, err := offers.CountActive(r.Context())
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &count)
	}
}

// CreateOfferHandler handles POST /offers/{side}
func CreateOfferHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offers := offersFor(deps, w, r)
		if offers == nil {
			return
		}

		var offer entities.Offer
		if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := offers.Create(r.Context(), &offer); err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, &offer)
	}
}

// UpdateOfferHandler handles PUT /offers/{side}/{id}
func UpdateOfferHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offers := offersFor(deps, w, r)
		if offers == nil {
			return
		}
		id, ok := idFromRequest(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid offer id")
			return
		}

		var offer entities.Offer
		if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		offer.ID = id
		if err := offers.Update(r.Context(), &offer); err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &offer)
	}
}

// DeleteOfferHandler handles DELETE /offers/{side}/{id}
func DeleteOfferHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offers := offersFor(deps, w, r)
		if offers == nil {
			return
		}
		id, ok := idFromRequest(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid offer id")
			return
		}

		if err := offers.Delete(r.Context(), id); err != nil {
			respondWithServiceError(w, err)
			return
		}
		msg := "deleted"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// AcceptOfferHandler handles POST /offers/{side}/{id}/accept
func AcceptOfferHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offers := offersFor(deps, w, r)
		if offers == nil {
			return
		}
		id, ok := idFromRequest(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid offer id")
			return
		}

		if err := offers.Accept(r.Context(), id); err != nil {
			respondWithServiceError(w, err)
			return
		}
		msg := "accepted"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// RejectOfferHandler handles POST /offers/{side}/{id}/reject
func RejectOfferHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offers := offersFor(deps, w, r)
		if offers == nil {
			return
		}
		id, ok := idFromRequest(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid offer id")
			return
		}

		if err := offers.Reject(r.Context(), id); err != nil {
			respondWithServiceError(w, err)
			return
		}
		msg := "rejected"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// OfferStatusForHandler handles GET /offers/{side}/status, returning the
// status id of the caller's offer against an advertisement. Zero means
// no offer exists; that is a valid answer, not an error.
func OfferStatusForHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offers := offersFor(deps, w, r)
		if offers == nil {
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

		statusID, err := offers.StatusIdFor(r.Context(), adID, userID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &statusID)
	}
}

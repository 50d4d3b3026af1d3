package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/models/entities"
	"scoutline/backend/internal/services"

	"github.com/go-chi/chi/v5"
)

// sideFromRequest resolves the {side} URL segment to a side-bound
// service selector. Anything but "player" or "club" is rejected.
func sideFromRequest(r *http.Request) (constants.Side, bool) {
	switch chi.URLParam(r, "side") {
	case constants.SidePlayer.String():
		return constants.SidePlayer, true
	case constants.SideClub.String():
		return constants.SideClub, true
	default:
		return "", false
	}
}

func idFromRequest(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

func parseQueryID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
}

func catalogFor(deps *Dependencies, w http.ResponseWriter, r *http.Request) *services.CatalogService {
	side, ok := sideFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "side must be player or club")
		return nil
	}
	return deps.CatalogFor(side)
}

// GetAdvertisementHandler handles GET /advertisements/{side}/{id}
func GetAdvertisementHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog := catalogFor(deps, w, r)
		if catalog == nil {
			return
		}
		id, ok := idFromRequest(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid advertisement id")
			return
		}

		ad, err := catalog.Get(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, ad)
	}
}

// ListAdvertisementsHandler handles GET /advertisements/{side} with an
// optional ?state=active|inactive filter
func ListAdvertisementsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog := catalogFor(deps, w, r)
		if catalog == nil {
			return
		}

		var (
			ads []entities.Advertisement
			err error
		)
		switch r.URL.Query().Get("state") {
		case "active":
			ads, err = catalog.ListActive(r.Context())
		case "inactive":
			ads, err = catalog.ListInactive(r.Context())
		default:
			ads, err = catalog.ListAll(r.Context())
		}
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &ads)
	}
}

// CountActiveAdvertisementsHandler handles GET /advertisements/{side}/count
func CountActiveAdvertisementsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog := catalogFor(deps, w, r)
		if catalog == nil {
			return
		}

		count, err := catalog.CountActive(r.Context())
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &count)
	}
}

// CreateAdvertisementHandler handles POST /advertisements/{side}
func CreateAdvertisementHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog := catalogFor(deps, w, r)
		if catalog == nil {
			return
		}

		var ad entities.Advertisement
		if err := json.NewDecoder(r.Body).Decode(&ad); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := catalog.Create(r.Context(), &ad); err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, &ad)
	}
}

// UpdateAdvertisementHandler handles PUT /advertisements/{side}/{id}
func UpdateAdvertisementHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog := catalogFor(deps, w, r)
		if catalog == nil {
			return
		}
		id, ok := idFromRequest(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid advertisement id")
			return
		}

		var ad entities.Advertisement
		if err := json.NewDecoder(r.Body).Decode(&ad); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		ad.ID = id
		if err := catalog.Update(r.Context(), &ad); err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &ad)
	}
}

// DeleteAdvertisementHandler handles DELETE /advertisements/{side}/{id}.
// The owned salary range, favorites and answering offers go with it.
func DeleteAdvertisementHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog := catalogFor(deps, w, r)
		if catalog == nil {
			return
		}
		id, ok := idFromRequest(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid advertisement id")
			return
		}

		if err := catalog.Delete(r.Context(), id); err != nil {
			respondWithServiceError(w, err)
			return
		}
		ok2 := "deleted"
		respondWithSuccess(w, http.StatusOK, &ok2)
	}
}

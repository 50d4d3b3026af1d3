package api

import (
	"encoding/json"
	"net/http"

	"scoutline/backend/internal/models/entities"
	"scoutline/backend/internal/services"

	"github.com/go-chi/chi/v5"
)

type registerUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
}

// RegisterUserHandler handles POST /users
func RegisterUserHandler(identity *services.IdentityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user := &entities.User{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
			Location:  req.Location,
		}
		if err := identity.Register(r.Context(), user, req.Password); err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, user)
	}
}

// GetUserHandler handles GET /users/{user_id}
func GetUserHandler(identity *services.IdentityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := identity.Get(r.Context(), chi.URLParam(r, "user_id"))
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, user)
	}
}

// DeleteUserHandler handles DELETE /users/{user_id}. Deletion runs the
// full reassignment cascade before the user row is removed.
func DeleteUserHandler(identity *services.IdentityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := identity.DeleteUser(r.Context(), chi.URLParam(r, "user_id")); err != nil {
			respondWithServiceError(w, err)
			return
		}
		ok := "deleted"
		respondWithSuccess(w, http.StatusOK, &ok)
	}
}

// GetUserRolesHandler handles GET /users/{user_id}/roles
func GetUserRolesHandler(identity *services.IdentityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roles, err := identity.RolesOf(r.Context(), chi.URLParam(r, "user_id"))
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &roles)
	}
}

// UsersWithRoleHandler handles GET /roles/{role_name}/users
func UsersWithRoleHandler(identity *services.IdentityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := identity.UsersWithRole(r.Context(), chi.URLParam(r, "role_name"))
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &users)
	}
}

// PromoteUserHandler handles POST /users/{user_id}/promote
func PromoteUserHandler(identity *services.IdentityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := identity.Promote(r.Context(), chi.URLParam(r, "user_id")); err != nil {
			respondWithServiceError(w, err)
			return
		}
		ok := "promoted"
		respondWithSuccess(w, http.StatusOK, &ok)
	}
}

// DemoteUserHandler handles POST /users/{user_id}/demote
func DemoteUserHandler(identity *services.IdentityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := identity.Demote(r.Context(), chi.URLParam(r, "user_id")); err != nil {
			respondWithServiceError(w, err)
			return
		}
		ok := "demoted"
		respondWithSuccess(w, http.StatusOK, &ok)
	}
}

package api

import (
	"encoding/json"
	"net/http"

	"scoutline/backend/internal/models/entities"
	"scoutline/backend/internal/services"
)

// ReportProblemHandler handles POST /problems
func ReportProblemHandler(problems *services.ProblemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var problem entities.Problem
		if err := json.NewDecoder(r.Body).Decode(&problem); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := problems.Report(r.Context(), &problem); err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, &problem)
	}
}

// ListProblemsHandler handles GET /problems with an optional
// ?state=unresolved filter
func ListProblemsHandler(problems *services.ProblemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			out []entities.Problem
			err error
		)
		if r.URL.Query().Get("state") == "unresolved" {
			out, err = problems.ListUnresolved(r.Context())
		} else {
			out, err = problems.ListAll(r.Context())
		}
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &out)
	}
}

// GetProblemHandler handles GET /problems/{id}
func GetProblemHandler(problems *services.ProblemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idFromRequest(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid problem id")
			return
		}

		problem, err := problems.Get(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, problem)
	}
}

// ResolveProblemHandler handles POST /problems/{id}/resolve
func ResolveProblemHandler(problems *services.ProblemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idFromRequest(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid problem id")
			return
		}

		if err := problems.MarkResolved(r.Context(), id); err != nil {
			respondWithServiceError(w, err)
			return
		}
		msg := "resolved"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

package api

import (
	"encoding/json"
	"net/http"
	"time"

	"scoutline/backend/internal/db"
	"scoutline/backend/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]entities.ServiceStatus)

		mongoStatus := "ok"
		mongoDetails := "Mongo Connected"
		if err := db.Ping(r.Context()); err != nil {
			mongoStatus = "down"
			mongoDetails = err.Error()
		}
		services["mongo"] = entities.ServiceStatus{
			Status:  mongoStatus,
			Details: mongoDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		now := time.Now()
		uptime := now.Sub(upSince).Round(time.Second).String()

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

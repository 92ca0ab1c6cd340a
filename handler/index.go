package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

// Status reports liveness for load balancers and uptime checks.
func Status(service string) http.HandlerFunc {
	started := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		response := map[string]interface{}{
			"status":  "ok",
			"service": service,
			"uptime":  time.Since(started).Round(time.Second).String(),
		}

		json.NewEncoder(w).Encode(response)
	}
}

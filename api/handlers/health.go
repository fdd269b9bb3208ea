// ABOUTME: Liveness probe endpoint

package handlers

import "net/http"

// HealthHandler responds to GET /health.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
}

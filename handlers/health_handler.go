package handlers

import "net/http"

// HealthHandler handles GET /healthz.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	env := jsonResponse{"status": "ok"}
	if err := writeJSON(w, http.StatusOK, env, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

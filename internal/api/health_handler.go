package api

import (
	"net/http"
)

// HealthHandler returns 200 if service is healthy.
func (a *API) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// ReadyHandler returns 200 once the database and the state store answer.
func (a *API) ReadyHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := a.db.Ping(ctx); err != nil {
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "db unavailable"})
		return
	}
	if err := a.states.Ping(ctx); err != nil {
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "redis unavailable"})
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

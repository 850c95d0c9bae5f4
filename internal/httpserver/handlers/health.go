package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/restdemo/internal/httpserver/deps"
	"github.com/MrSnakeDoc/restdemo/internal/logger"
)

// HealthBody is the literal liveness answer clients compare against.
const HealthBody = "OK"

// Health answers the API liveness probe with a plain-text "OK".
func Health(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(HealthBody)); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}

package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/restdemo/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
}

// Readyz is always ready: the backend holds no state that needs warming up.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, d.Logger, http.StatusOK, readyzResponse{Ready: true})
	}
}

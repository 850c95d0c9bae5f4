package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/restdemo/internal/domain"
	"github.com/MrSnakeDoc/restdemo/internal/httpserver/deps"
)

func Info(d deps.Deps) http.HandlerFunc {
	info := domain.NewAPIInfo(d.Version, d.APIBasePath)
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, d.Logger, http.StatusOK, info)
	}
}

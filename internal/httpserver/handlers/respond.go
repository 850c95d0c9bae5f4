package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/restdemo/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, log logger.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && log != nil {
		log.Debug("failed to write response", logger.Error(err))
	}
}

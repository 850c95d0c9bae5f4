package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/restdemo/internal/httpserver/deps"
	"github.com/MrSnakeDoc/restdemo/internal/logger"
)

// DummyData serves one freshly produced record. A failing source or a record with
// blank fields yields a 500 with a JSON error body instead of bad data.
func DummyData(d deps.Deps) http.HandlerFunc {
	source := d.Source()

	return func(w http.ResponseWriter, r *http.Request) {
		reqID := middleware.GetReqID(r.Context())

		record, err := source(r.Context())
		if err != nil {
			d.Logger.Error("record source failed",
				logger.String("request_id", reqID),
				logger.Error(err))
			writeJSON(w, d.Logger, http.StatusInternalServerError, errorResponse{Error: "failed to produce record"})
			return
		}

		if !record.Valid() {
			blank := strings.Join(record.BlankFields(), ",")
			d.Logger.Error("record source produced an invalid record",
				logger.String("request_id", reqID),
				logger.String("blank_fields", blank))
			writeJSON(w, d.Logger, http.StatusInternalServerError, errorResponse{Error: "invalid record: blank " + blank})
			return
		}

		d.Logger.Debug("serving record",
			logger.String("request_id", reqID),
			logger.String("id", record.ID))
		writeJSON(w, d.Logger, http.StatusOK, record)
	}
}

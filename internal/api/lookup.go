package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mwhite7112/webreader/internal/lookup"
	"github.com/mwhite7112/webreader/internal/service"
)

// Client-facing messages. Upstream detail is logged, never returned.
const (
	msgMissingFields = "Word and sentence are required."
	msgUpstream      = "Failed to process with AI."
)

// --- POST /analisar ---

func handleAnalyze(lookups *service.LookupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req lookup.Request
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}

		result, err := lookups.Analyze(r.Context(), req)
		if err != nil {
			if errors.Is(err, lookup.ErrMissingFields) {
				jsonError(w, msgMissingFields, http.StatusBadRequest)
				return
			}
			slog.Error("lookup failed", "word", req.Word, "language", req.Language, "error", err)
			jsonError(w, msgUpstream, http.StatusInternalServerError)
			return
		}

		jsonOK(w, result)
	}
}

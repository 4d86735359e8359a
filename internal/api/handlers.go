package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mwhite7112/webreader/internal/config"
	"github.com/mwhite7112/webreader/internal/service"
	"github.com/mwhite7112/webreader/internal/vocabulary"
)

const maxBodyBytes = 1 << 20

// NewRouter wires all routes.
func NewRouter(lookups *service.LookupService, vocab *service.VocabularyService, corsCfg config.CORSConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors(corsCfg))

	r.Get("/healthz", handleHealth)

	r.Post("/analisar", handleAnalyze(lookups))

	r.Get("/vocabulary", handleListVocabulary(vocab))
	r.Post("/vocabulary", handleSaveWord(vocab))
	r.Delete("/vocabulary", handleClearVocabulary(vocab))
	r.Delete("/vocabulary/{word}", handleRemoveWord(vocab))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- GET /vocabulary ---

func handleListVocabulary(vocab *service.VocabularyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := vocab.List(r.Context())
		if err != nil {
			slog.Error("list vocabulary failed", "error", err)
			jsonError(w, "failed to list vocabulary", http.StatusInternalServerError)
			return
		}
		jsonOK(w, map[string]any{
			"entries": entries,
			"label":   vocabulary.CountLabel(len(entries)),
		})
	}
}

// --- POST /vocabulary ---

type saveWordRequest struct {
	Word        string   `json:"word"`
	Definition  string   `json:"definition"`
	Synonyms    []string `json:"synonyms"`
	Translation string   `json:"translation"`
	Mnemonic    string   `json:"mnemonic"`
}

func handleSaveWord(vocab *service.VocabularyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveWordRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}

		entry, err := vocab.Save(r.Context(), vocabulary.Entry{
			Word:        req.Word,
			Definition:  req.Definition,
			Synonyms:    req.Synonyms,
			Translation: req.Translation,
			Mnemonic:    req.Mnemonic,
		})
		if err != nil {
			if errors.Is(err, service.ErrEmptyWord) {
				jsonError(w, "word is required", http.StatusBadRequest)
				return
			}
			slog.Error("save word failed", "word", req.Word, "error", err)
			jsonError(w, "failed to save word", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(entry) //nolint:errcheck
	}
}

// --- DELETE /vocabulary/:word ---

func handleRemoveWord(vocab *service.VocabularyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		word := chi.URLParam(r, "word")
		if _, err := vocab.Remove(r.Context(), word); err != nil {
			slog.Error("remove word failed", "word", word, "error", err)
			jsonError(w, "failed to remove word", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// --- DELETE /vocabulary?confirm=true ---

func handleClearVocabulary(vocab *service.VocabularyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("confirm") != "true" {
			jsonError(w, "pass ?confirm=true to clear all saved words", http.StatusBadRequest)
			return
		}
		if err := vocab.Clear(r.Context()); err != nil {
			slog.Error("clear vocabulary failed", "error", err)
			jsonError(w, "failed to clear vocabulary", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}

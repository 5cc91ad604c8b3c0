// Package server exposes internal/walker over HTTP, mirroring the
// teacher's cmd/server/main.go request/response shape (decode a JSON
// body, run the engine, encode the result or an error) but routed
// through github.com/go-chi/chi/v5 with github.com/go-chi/cors instead
// of a bare http.ServeMux, the same upgrade ziadkadry99/auto-doc makes
// over a plain mux.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/conceptgraph/wiktsem/internal/edgeuri"
	"github.com/conceptgraph/wiktsem/internal/walker"
)

// AllowedOrigins is the CORS allow-list, mirroring the teacher's
// package-level allowedOrigins var.
var AllowedOrigins = []string{
	"http://localhost:5173",
}

type extractRequest struct {
	Entry walker.StructuredEntry `json:"entry"`
}

type extractResponse struct {
	Edges []edgeuri.Edge `json:"edges"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// NewRouter builds the HTTP handler for the extraction service. walk is
// called once per request; a *walker.Walker is safe to share across
// concurrent requests since it carries no per-request mutable state.
func NewRouter(walk *walker.Walker, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: AllowedOrigins,
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Post("/extract", func(w http.ResponseWriter, req *http.Request) {
		var body extractRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if body.Entry.Title == "" {
			writeError(w, http.StatusBadRequest, "missing field: entry.title")
			return
		}

		edges, err := walk.WalkEntry(body.Entry)
		if err != nil {
			logger.Error("entry extraction failed", "title", body.Entry.Title, "error", err)
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, extractResponse{Edges: edges})
	})

	return r
}

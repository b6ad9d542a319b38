// Package api exposes the public read routes as individually mountable
// handlers, suitable for function-per-route platforms. The store client is
// injected at construction; handlers hold no global state.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"eventboard/internal/domain"
)

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Handler serves the read-only event routes from an injected store.
type Handler struct {
	Logger *slog.Logger
	Store  domain.EventStore
}

func New(logger *slog.Logger, store domain.EventStore) *Handler {
	return &Handler{
		Logger: logger,
		Store:  store,
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "Method Not Allowed"})
	return false
}

// Events handles GET /events.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	if !h.requireGet(w, r) {
		return
	}
	events, err := h.Store.ListEvents(r.Context())
	if err != nil {
		h.Logger.ErrorContext(r.Context(), "list events failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal Server Error", Details: err.Error()})
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

// EventsByCategory handles GET /events/{category}. When mounted without a
// pattern, the category is taken from the trailing path segment.
func (h *Handler) EventsByCategory(w http.ResponseWriter, r *http.Request) {
	if !h.requireGet(w, r) {
		return
	}
	category := r.PathValue("category")
	if category == "" {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		category = parts[len(parts)-1]
	}
	if category == "" || category == "events" {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Not Found"})
		return
	}
	events, err := h.Store.ListEventsByCategory(r.Context(), category)
	if err != nil {
		h.Logger.ErrorContext(r.Context(), "list events by category failed", "category", category, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal Server Error", Details: err.Error()})
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !h.requireGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

package controllers

import (
	"log/slog"
	"net/http"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// ListingController serves the public read-only routes. Responses are plain
// JSON arrays of event rows, unwrapped.
type ListingController struct {
	Logger *slog.Logger
	Store  domain.EventStore
}

func NewListingController(logger *slog.Logger, store domain.EventStore) *ListingController {
	return &ListingController{
		Logger: logger,
		Store:  store,
	}
}

// Events godoc
// @Summary List all events
// @Description Returns every event row, ordered by id.
// @Tags public
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 405 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [get]
func (c *ListingController) Events(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		helpers.WriteMethodNotAllowed(w, http.MethodGet)
		return
	}
	events, err := c.Store.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list events failed", "path", r.URL.Path, "err", err)
		helpers.WriteServerError(w, err.Error())
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// EventsByCategory godoc
// @Summary List events in a category
// @Description Returns event rows whose category matches the path segment exactly.
// @Tags public
// @Produce json
// @Param category path string true "Category"
// @Success 200 {array} domain.Event
// @Failure 405 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{category} [get]
func (c *ListingController) EventsByCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		helpers.WriteMethodNotAllowed(w, http.MethodGet)
		return
	}
	category := r.PathValue("category")
	if category == "" {
		helpers.WriteError(w, http.StatusNotFound, "Not Found")
		return
	}
	events, err := c.Store.ListEventsByCategory(r.Context(), category)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list events by category failed", "path", r.URL.Path, "category", category, "err", err)
		helpers.WriteServerError(w, err.Error())
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// Health godoc
// @Summary Health check
// @Tags public
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (c *ListingController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		helpers.WriteMethodNotAllowed(w, http.MethodGet)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

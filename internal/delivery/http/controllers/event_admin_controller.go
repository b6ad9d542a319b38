package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
	"eventboard/internal/services"
)

// EventMutator is the slice of the mutation coordinator the admin surface uses.
type EventMutator interface {
	SaveEvent(ctx context.Context, cmd services.EventCommand) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
	SaveDay(ctx context.Context, slot domain.Slot, cmd services.DayCommand) (*domain.DayRecord, error)
	DeleteDay(ctx context.Context, slot domain.Slot, id int64) error
}

// ListingSource is the slice of the listing service the admin surface uses.
type ListingSource interface {
	Events(ctx context.Context) ([]domain.EventWithDays, error)
	Search(ctx context.Context, query, category string) ([]domain.EventWithDays, error)
}

// EventRequest is the request body for event create and update.
type EventRequest struct {
	Name              string   `json:"name"`
	Tagline           *string  `json:"tagline"`
	Description       *string  `json:"description"`
	Organizer         *string  `json:"organizer"`
	Category          *string  `json:"category"`
	PrizePool         int64    `json:"prize_pool"`
	Keywords          []string `json:"keywords"`
	Solo              *bool    `json:"solo"`
	RegistrationPitch *string  `json:"registration_pitch"`
	Rules             *string  `json:"rules"`
	Highlights        *string  `json:"highlights"`
}

// Validate implements Validator.
func (e EventRequest) Validate() []string {
	form := e.Form()
	form.Normalize()
	return form.Validate()
}

// Form converts the request into a save payload. An omitted solo flag
// defaults to true.
func (e EventRequest) Form() domain.EventForm {
	solo := true
	if e.Solo != nil {
		solo = *e.Solo
	}
	return domain.EventForm{
		Name:              e.Name,
		Tagline:           e.Tagline,
		Description:       e.Description,
		Organizer:         e.Organizer,
		Category:          e.Category,
		PrizePool:         e.PrizePool,
		Keywords:          e.Keywords,
		Solo:              solo,
		RegistrationPitch: e.RegistrationPitch,
		Rules:             e.Rules,
		Highlights:        e.Highlights,
	}
}

// AdminController serves the JWT-protected management routes. All mutations go
// through the coordinator; the assembled listing comes from the cache.
type AdminController struct {
	Logger  *slog.Logger
	Mutator EventMutator
	Listing ListingSource
}

func NewAdminController(logger *slog.Logger, mutator EventMutator, listing ListingSource) *AdminController {
	return &AdminController{
		Logger:  logger,
		Mutator: mutator,
		Listing: listing,
	}
}

// ListEvents godoc
// @Summary List assembled events
// @Description Returns the assembled event view (event plus day records), optionally narrowed by a free-text search and a category selector. Category "all" (the default) matches everything.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free-text filter over name, tagline, description, organizer"
// @Param category query string false "Category selector, default all"
// @Success 200 {array} domain.EventWithDays
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /admin/events [get]
func (c *AdminController) ListEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")
	if category == "" {
		category = domain.CategoryAll
	}
	list, err := c.Listing.Search(r.Context(), query, category)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "assembled listing failed", "path", r.URL.Path, "err", err)
		helpers.WriteServerError(w, err.Error())
		return
	}
	if list == nil {
		list = []domain.EventWithDays{}
	}
	helpers.WriteJSON(w, http.StatusOK, list)
}

// CreateEvent godoc
// @Summary Create an event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event data"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /admin/events [post]
func (c *AdminController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Mutator.SaveEvent(r.Context(), services.CreateEvent{Form: req.Form()})
	if err != nil {
		c.writeMutationError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param event body EventRequest true "Event data"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /admin/events/{id} [put]
func (c *AdminController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Mutator.SaveEvent(r.Context(), services.UpdateEvent{ID: id, Form: req.Form()})
	if err != nil {
		c.writeMutationError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 204 "No Content"
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /admin/events/{id} [delete]
func (c *AdminController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Mutator.DeleteEvent(r.Context(), id); err != nil {
		c.writeMutationError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses an int64 path segment, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// writeMutationError maps coordinator errors to HTTP responses.
func (c *AdminController) writeMutationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "mutation failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteServerError(w, err.Error())
	}
}

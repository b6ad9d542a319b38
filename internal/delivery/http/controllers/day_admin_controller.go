package controllers

import (
	"net/http"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
	"eventboard/internal/services"
)

// DayRequest is the request body for day-record create and update.
type DayRequest struct {
	Location  *string `json:"location"`
	Date      string  `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

// Validate implements Validator.
func (d DayRequest) Validate() []string {
	return d.Form().Validate()
}

func (d DayRequest) Form() domain.DayForm {
	return domain.DayForm{
		Location:  d.Location,
		Date:      d.Date,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
	}
}

// pathSlot parses the {slot} path segment, writing a 400 on failure.
func pathSlot(w http.ResponseWriter, r *http.Request) (domain.Slot, bool) {
	slot, err := domain.ParseSlot(r.PathValue("slot"))
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return slot, true
}

// CreateDay godoc
// @Summary Create a day record for an event
// @Description Creates a scheduling record in the given slot (day1 or day2), owned by the event in the path. The owning event must exist.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Owning event ID"
// @Param slot path string true "Day slot" Enums(day1, day2)
// @Param day body DayRequest true "Day data"
// @Success 201 {object} domain.DayRecord
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /admin/events/{id}/days/{slot} [post]
func (c *AdminController) CreateDay(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	slot, ok := pathSlot(w, r)
	if !ok {
		return
	}
	var req DayRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	day, err := c.Mutator.SaveDay(r.Context(), slot, services.CreateDay{EventID: eventID, Form: req.Form()})
	if err != nil {
		c.writeMutationError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, day)
}

// UpdateDay godoc
// @Summary Update a day record
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slot path string true "Day slot" Enums(day1, day2)
// @Param id path int true "Day record ID"
// @Param day body DayRequest true "Day data"
// @Success 200 {object} domain.DayRecord
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /admin/days/{slot}/{id} [put]
func (c *AdminController) UpdateDay(w http.ResponseWriter, r *http.Request) {
	slot, ok := pathSlot(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req DayRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	day, err := c.Mutator.SaveDay(r.Context(), slot, services.UpdateDay{ID: id, Form: req.Form()})
	if err != nil {
		c.writeMutationError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, day)
}

// DeleteDay godoc
// @Summary Delete a day record
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param slot path string true "Day slot" Enums(day1, day2)
// @Param id path int true "Day record ID"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /admin/days/{slot}/{id} [delete]
func (c *AdminController) DeleteDay(w http.ResponseWriter, r *http.Request) {
	slot, ok := pathSlot(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Mutator.DeleteDay(r.Context(), slot, id); err != nil {
		c.writeMutationError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

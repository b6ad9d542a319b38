package domain

import (
	"context"
	"strings"
	"time"
)

// Slot identifies which day collection a record belongs to. The two
// collections are structurally identical and distinguished only by slot.
type Slot string

const (
	SlotDay1 Slot = "day1"
	SlotDay2 Slot = "day2"
)

// ParseSlot returns the Slot for s, or ErrInvalidInput if s names neither collection.
func ParseSlot(s string) (Slot, error) {
	switch Slot(strings.ToLower(strings.TrimSpace(s))) {
	case SlotDay1:
		return SlotDay1, nil
	case SlotDay2:
		return SlotDay2, nil
	}
	return "", ErrInvalidInput
}

// DayRecord is per-day scheduling detail attached to an event.
// EventID references the owning event and must exist at creation time.
// swagger:model DayRecord
type DayRecord struct {
	ID        int64   `json:"id"`
	EventID   int64   `json:"event_id"`
	Location  *string `json:"location"`
	Date      string  `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

// DayForm is the save payload for a day record, without identifier or owner.
// The owning event is supplied separately at creation time.
type DayForm struct {
	Location  *string `json:"location"`
	Date      string  `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

// Validate checks the calendar date (required, YYYY-MM-DD) and the optional
// times of day (HH:MM, no timezone). Returns error messages; nil means valid.
func (f DayForm) Validate() []string {
	var errs []string
	if f.Date == "" {
		errs = append(errs, "date is required")
	} else if _, err := time.Parse("2006-01-02", f.Date); err != nil {
		errs = append(errs, "date must be a calendar date in YYYY-MM-DD format")
	}
	for _, t := range []struct {
		name  string
		value *string
	}{
		{"start_time", f.StartTime},
		{"end_time", f.EndTime},
	} {
		if t.value == nil {
			continue
		}
		if _, err := time.Parse("15:04", *t.value); err != nil {
			errs = append(errs, t.name+" must be a time of day in HH:MM format")
		}
	}
	return errs
}

// DayStore is the record store contract for the day1 and day2 collections.
type DayStore interface {
	ListDays(ctx context.Context, slot Slot) ([]DayRecord, error)
	InsertDay(ctx context.Context, slot Slot, eventID int64, form DayForm) (*DayRecord, error)
	UpdateDay(ctx context.Context, slot Slot, id int64, form DayForm) (*DayRecord, error)
	DeleteDay(ctx context.Context, slot Slot, id int64) error
}

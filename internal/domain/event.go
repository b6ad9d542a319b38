package domain

import (
	"context"
	"fmt"
	"strings"
)

// CategoryAll is the selector value that matches every event.
const CategoryAll = "all"

// Event represents a listed event (a contest, talk, or activity).
// ID is assigned by the record store on create and never reassigned.
// swagger:model Event
type Event struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Tagline           *string  `json:"tagline"`
	Description       *string  `json:"description"`
	Organizer         *string  `json:"organizer"`
	Category          *string  `json:"category"`
	PrizePool         int64    `json:"prize_pool"`
	Keywords          []string `json:"keywords"`
	Solo              bool     `json:"solo"`
	RegistrationPitch *string  `json:"registration_pitch"`
	Rules             *string  `json:"rules"`
	Highlights        *string  `json:"highlights"`
}

// EventForm is the save payload for an event: an Event without its identifier.
// Optional fields are pointers; nil means absent, never an empty-string sentinel.
type EventForm struct {
	Name              string   `json:"name"`
	Tagline           *string  `json:"tagline"`
	Description       *string  `json:"description"`
	Organizer         *string  `json:"organizer"`
	Category          *string  `json:"category"`
	PrizePool         int64    `json:"prize_pool"`
	Keywords          []string `json:"keywords"`
	Solo              bool     `json:"solo"`
	RegistrationPitch *string  `json:"registration_pitch"`
	Rules             *string  `json:"rules"`
	Highlights        *string  `json:"highlights"`
}

// Normalize trims the name and canonicalizes keywords: empty entries are
// dropped, duplicates removed (first occurrence kept), and an empty set
// becomes nil.
func (f *EventForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	if f.Keywords == nil {
		return
	}
	seen := make(map[string]struct{}, len(f.Keywords))
	var out []string
	for _, k := range f.Keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	f.Keywords = out
}

// Validate implements the form-boundary rules. Returns error messages; nil means valid.
func (f EventForm) Validate() []string {
	var errs []string
	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, "name is required")
	}
	if f.PrizePool < 0 {
		errs = append(errs, "prize_pool must not be negative")
	}
	return errs
}

// MatchesSearch reports whether the free-text query matches the event.
// An empty query always matches; otherwise the query must be a
// case-insensitive substring of name, tagline, description, or organizer.
// Other fields (rules, highlights, keywords) deliberately do not participate.
func (e Event) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(e.Name), q) {
		return true
	}
	for _, field := range []*string{e.Tagline, e.Description, e.Organizer} {
		if field != nil && strings.Contains(strings.ToLower(*field), q) {
			return true
		}
	}
	return false
}

// MatchesCategory reports whether the event passes the category selector.
// The sentinel "all" passes everything; otherwise a case-insensitive equality
// against the event category. Events without a category never match a
// non-"all" selector.
func (e Event) MatchesCategory(selector string) bool {
	if selector == CategoryAll {
		return true
	}
	if e.Category == nil {
		return false
	}
	return strings.EqualFold(*e.Category, selector)
}

// EventWithDays is the assembled view: an event joined with its optional
// per-day scheduling records.
// swagger:model EventWithDays
type EventWithDays struct {
	Event
	Day1 *DayRecord `json:"day1,omitempty"`
	Day2 *DayRecord `json:"day2,omitempty"`
}

// EventStore is the record store contract for the events collection.
// Implementations: Postgres repository, Supabase PostgREST client.
type EventStore interface {
	ListEvents(ctx context.Context) ([]Event, error)
	ListEventsByCategory(ctx context.Context, category string) ([]Event, error)
	GetEvent(ctx context.Context, id int64) (*Event, error)
	InsertEvent(ctx context.Context, form EventForm) (*Event, error)
	UpdateEvent(ctx context.Context, id int64, form EventForm) (*Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

func (e Event) String() string {
	return fmt.Sprintf("Event(%d: %s)", e.ID, e.Name)
}

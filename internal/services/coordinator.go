package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventboard/internal/domain"
)

// EventCommand is a save intent for an event, decided once at the call site:
// either CreateEvent or UpdateEvent. The coordinator dispatches on the
// variant and never re-derives the decision from identifier nullability.
type EventCommand interface {
	isEventCommand()
}

// CreateEvent requests insertion of a new event.
type CreateEvent struct {
	Form domain.EventForm
}

// UpdateEvent requests an update of the event with the given identifier.
type UpdateEvent struct {
	ID   int64
	Form domain.EventForm
}

func (CreateEvent) isEventCommand() {}
func (UpdateEvent) isEventCommand() {}

// EventSaveCommand performs the upsert-by-presence decision exactly once:
// a present identifier yields an UpdateEvent, an absent one a CreateEvent.
func EventSaveCommand(id *int64, form domain.EventForm) EventCommand {
	if id != nil {
		return UpdateEvent{ID: *id, Form: form}
	}
	return CreateEvent{Form: form}
}

// DayCommand is a save intent for a day record in one of the two slots.
type DayCommand interface {
	isDayCommand()
}

// CreateDay requests insertion of a day record owned by EventID.
// The owning event must already exist; days are never created standalone.
type CreateDay struct {
	EventID int64
	Form    domain.DayForm
}

// UpdateDay requests an update of the day record with the given identifier.
type UpdateDay struct {
	ID   int64
	Form domain.DayForm
}

func (CreateDay) isDayCommand() {}
func (UpdateDay) isDayCommand() {}

// DaySaveCommand performs the upsert-by-presence decision for a day record.
// eventID is the currently selected event that owns the slot.
func DaySaveCommand(id *int64, eventID int64, form domain.DayForm) DayCommand {
	if id != nil {
		return UpdateDay{ID: *id, Form: form}
	}
	return CreateDay{EventID: eventID, Form: form}
}

// Invalidator marks a cached assembled view stale after a mutation.
type Invalidator interface {
	Invalidate()
}

// Coordinator routes event and day mutations to the record store. Every
// successful mutation invalidates the listing cache so subsequent reads
// reflect the change. Store failures are surfaced to the caller with the
// store's message and are never retried.
type Coordinator struct {
	events   domain.EventStore
	days     domain.DayStore
	cache    Invalidator
	notifier domain.NotificationService
	logger   *slog.Logger
	timeout  time.Duration
}

// NewCoordinator wires a Coordinator. notifier may be nil to disable
// ops notifications.
func NewCoordinator(
	events domain.EventStore,
	days domain.DayStore,
	cache Invalidator,
	notifier domain.NotificationService,
	logger *slog.Logger,
	timeout time.Duration,
) *Coordinator {
	return &Coordinator{
		events:   events,
		days:     days,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
		timeout:  timeout,
	}
}

// SaveEvent applies an event save command and returns the stored row.
func (c *Coordinator) SaveEvent(ctx context.Context, cmd EventCommand) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	switch cmd := cmd.(type) {
	case CreateEvent:
		form := cmd.Form
		form.Normalize()
		if errs := form.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errs, "; "))
		}
		event, err := c.events.InsertEvent(ctx, form)
		if err != nil {
			return nil, fmt.Errorf("insert event: %w", err)
		}
		c.cache.Invalidate()
		c.notifyCreated(ctx, event)
		return event, nil
	case UpdateEvent:
		form := cmd.Form
		form.Normalize()
		if errs := form.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errs, "; "))
		}
		event, err := c.events.UpdateEvent(ctx, cmd.ID, form)
		if err != nil {
			return nil, fmt.Errorf("update event %d: %w", cmd.ID, err)
		}
		c.cache.Invalidate()
		return event, nil
	default:
		return nil, fmt.Errorf("%w: unknown event command %T", domain.ErrInvalidInput, cmd)
	}
}

// DeleteEvent deletes the event with the given identifier. The store's
// referential policy decides the fate of its day records.
func (c *Coordinator) DeleteEvent(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	event, err := c.events.GetEvent(ctx, id)
	if err != nil {
		return fmt.Errorf("get event %d: %w", id, err)
	}
	if err := c.events.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	c.cache.Invalidate()
	c.notifyDeleted(ctx, event)
	return nil
}

// SaveDay applies a day save command against the given slot and returns the
// stored row. Creation populates the foreign reference with the owning
// event's identifier and verifies that event exists first.
func (c *Coordinator) SaveDay(ctx context.Context, slot domain.Slot, cmd DayCommand) (*domain.DayRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	switch cmd := cmd.(type) {
	case CreateDay:
		if errs := cmd.Form.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errs, "; "))
		}
		if _, err := c.events.GetEvent(ctx, cmd.EventID); err != nil {
			return nil, fmt.Errorf("owning event %d: %w", cmd.EventID, err)
		}
		day, err := c.days.InsertDay(ctx, slot, cmd.EventID, cmd.Form)
		if err != nil {
			return nil, fmt.Errorf("insert %s: %w", slot, err)
		}
		c.cache.Invalidate()
		return day, nil
	case UpdateDay:
		if errs := cmd.Form.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errs, "; "))
		}
		day, err := c.days.UpdateDay(ctx, slot, cmd.ID, cmd.Form)
		if err != nil {
			return nil, fmt.Errorf("update %s %d: %w", slot, cmd.ID, err)
		}
		c.cache.Invalidate()
		return day, nil
	default:
		return nil, fmt.Errorf("%w: unknown day command %T", domain.ErrInvalidInput, cmd)
	}
}

// DeleteDay deletes the day record with the given identifier from the slot.
func (c *Coordinator) DeleteDay(ctx context.Context, slot domain.Slot, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.days.DeleteDay(ctx, slot, id); err != nil {
		return fmt.Errorf("delete %s %d: %w", slot, id, err)
	}
	c.cache.Invalidate()
	return nil
}

// Notifications are best-effort: a mailer failure is logged, never surfaced.

func (c *Coordinator) notifyCreated(ctx context.Context, event *domain.Event) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.EventCreated(ctx, event); err != nil {
		c.logger.WarnContext(ctx, "event created notification failed", "event_id", event.ID, "err", err)
	}
}

func (c *Coordinator) notifyDeleted(ctx context.Context, event *domain.Event) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.EventDeleted(ctx, event); err != nil {
		c.logger.WarnContext(ctx, "event deleted notification failed", "event_id", event.ID, "err", err)
	}
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventboard/internal/domain"
)

const eventColumns = `id, name, tagline, description, organizer, category, prize_pool, keywords, solo, registration_pitch, rules, highlights`

type eventStore struct {
	DB *sql.DB
}

// NewEventStore returns an EventStore backed by the events table.
func NewEventStore(db *sql.DB) domain.EventStore {
	return &eventStore{DB: db}
}

func (s *eventStore) ListEvents(ctx context.Context) ([]domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY id ASC
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (s *eventStore) ListEventsByCategory(ctx context.Context, category string) ([]domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE category = $1
		ORDER BY id ASC
	`
	rows, err := s.DB.QueryContext(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (s *eventStore) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *eventStore) InsertEvent(ctx context.Context, f domain.EventForm) (*domain.Event, error) {
	query := `
		INSERT INTO events (name, tagline, description, organizer, category, prize_pool, keywords, solo, registration_pitch, rules, highlights)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + eventColumns + `
	`
	e, err := scanEvent(s.DB.QueryRowContext(ctx, query,
		f.Name, f.Tagline, f.Description, f.Organizer, f.Category,
		f.PrizePool, pq.Array(f.Keywords), f.Solo, f.RegistrationPitch, f.Rules, f.Highlights,
	))
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *eventStore) UpdateEvent(ctx context.Context, id int64, f domain.EventForm) (*domain.Event, error) {
	query := `
		UPDATE events
		SET name = $1, tagline = $2, description = $3, organizer = $4, category = $5,
			prize_pool = $6, keywords = $7, solo = $8, registration_pitch = $9, rules = $10, highlights = $11
		WHERE id = $12
		RETURNING ` + eventColumns + `
	`
	e, err := scanEvent(s.DB.QueryRowContext(ctx, query,
		f.Name, f.Tagline, f.Description, f.Organizer, f.Category,
		f.PrizePool, pq.Array(f.Keywords), f.Solo, f.RegistrationPitch, f.Rules, f.Highlights,
		id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *eventStore) DeleteEvent(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*domain.Event, error) {
	e := &domain.Event{}
	var tagline, desc, org, cat, pitch, rules, highlights sql.NullString
	var keywords pq.StringArray
	err := row.Scan(
		&e.ID, &e.Name, &tagline, &desc, &org, &cat,
		&e.PrizePool, &keywords, &e.Solo, &pitch, &rules, &highlights,
	)
	if err != nil {
		return nil, err
	}
	e.Tagline = nullableString(tagline)
	e.Description = nullableString(desc)
	e.Organizer = nullableString(org)
	e.Category = nullableString(cat)
	e.RegistrationPitch = nullableString(pitch)
	e.Rules = nullableString(rules)
	e.Highlights = nullableString(highlights)
	if len(keywords) > 0 {
		e.Keywords = []string(keywords)
	}
	return e, nil
}

func scanEvents(rows *sql.Rows) ([]domain.Event, error) {
	events := make([]domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

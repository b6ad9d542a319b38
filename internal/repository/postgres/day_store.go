package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventboard/internal/domain"
)

type dayStore struct {
	DB *sql.DB
}

// NewDayStore returns a DayStore backed by the day1 and day2 tables.
func NewDayStore(db *sql.DB) domain.DayStore {
	return &dayStore{DB: db}
}

// tableFor maps a slot to its table. Slots come from ParseSlot or the Slot
// constants so the name is never caller-controlled.
func tableFor(slot domain.Slot) (string, error) {
	switch slot {
	case domain.SlotDay1:
		return "day1", nil
	case domain.SlotDay2:
		return "day2", nil
	}
	return "", fmt.Errorf("%w: unknown slot %q", domain.ErrInvalidInput, slot)
}

func (s *dayStore) ListDays(ctx context.Context, slot domain.Slot) ([]domain.DayRecord, error) {
	table, err := tableFor(slot)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT id, event_id, location, date, start_time, end_time
		FROM %s
		ORDER BY id ASC
	`, table)
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]domain.DayRecord, 0)
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, *d)
	}
	return days, rows.Err()
}

func (s *dayStore) InsertDay(ctx context.Context, slot domain.Slot, eventID int64, f domain.DayForm) (*domain.DayRecord, error) {
	table, err := tableFor(slot)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (event_id, location, date, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, event_id, location, date, start_time, end_time
	`, table)
	d, err := scanDay(s.DB.QueryRowContext(ctx, query, eventID, f.Location, f.Date, f.StartTime, f.EndTime))
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *dayStore) UpdateDay(ctx context.Context, slot domain.Slot, id int64, f domain.DayForm) (*domain.DayRecord, error) {
	table, err := tableFor(slot)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		UPDATE %s
		SET location = $1, date = $2, start_time = $3, end_time = $4
		WHERE id = $5
		RETURNING id, event_id, location, date, start_time, end_time
	`, table)
	d, err := scanDay(s.DB.QueryRowContext(ctx, query, f.Location, f.Date, f.StartTime, f.EndTime, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *dayStore) DeleteDay(ctx context.Context, slot domain.Slot, id int64) error {
	table, err := tableFor(slot)
	if err != nil {
		return err
	}
	result, err := s.DB.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanDay(row scanner) (*domain.DayRecord, error) {
	d := &domain.DayRecord{}
	var location, start, end sql.NullString
	var date time.Time
	if err := row.Scan(&d.ID, &d.EventID, &location, &date, &start, &end); err != nil {
		return nil, err
	}
	d.Location = nullableString(location)
	d.Date = date.Format("2006-01-02")
	d.StartTime = nullableString(start)
	d.EndTime = nullableString(end)
	return d, nil
}

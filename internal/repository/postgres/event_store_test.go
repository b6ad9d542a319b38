package postgres

import (
	"context"
	"database/sql"
	"testing"

	"eventboard/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventCols = []string{"id", "name", "tagline", "description", "organizer", "category", "prize_pool", "keywords", "solo", "registration_pitch", "rules", "highlights"}

func strPtr(s string) *string { return &s }

func eventRow(rows *sqlmock.Rows, id int64, name string, category any, keywords any) *sqlmock.Rows {
	return rows.AddRow(id, name, nil, nil, nil, category, int64(0), keywords, true, nil, nil, nil)
}

func TestEventStore_ListEvents(t *testing.T) {
	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    int
		wantErr bool
	}{
		{
			name: "two rows in id order",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(eventCols)
				eventRow(rows, 1, "Hack Night", "tech", "{ai,robotics}")
				eventRow(rows, 2, "Art Jam", nil, nil)
				mock.ExpectQuery(`SELECT id, name, tagline, description, organizer, category, prize_pool, keywords, solo, registration_pitch, rules, highlights\s+FROM events\s+ORDER BY id ASC`).
					WillReturnRows(rows)
			},
			want: 2,
		},
		{
			name: "empty result",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM events`).
					WillReturnRows(sqlmock.NewRows(eventCols))
			},
			want: 0,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM events`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			store := NewEventStore(db)
			got, err := store.ListEvents(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, tt.want)
			if tt.want == 2 {
				assert.Equal(t, "Hack Night", got[0].Name)
				assert.Equal(t, []string{"ai", "robotics"}, got[0].Keywords)
				assert.Nil(t, got[1].Category)
				assert.Nil(t, got[1].Keywords)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventStore_ListEventsByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(eventCols)
	eventRow(rows, 1, "Hack Night", "tech", nil)
	mock.ExpectQuery(`FROM events\s+WHERE category = \$1`).
		WithArgs("tech").
		WillReturnRows(rows)

	store := NewEventStore(db)
	got, err := store.ListEventsByCategory(context.Background(), "tech")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tech", *got[0].Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStore_GetEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(eventCols)
	eventRow(rows, 7, "Hack Night", "tech", nil)
	mock.ExpectQuery(`FROM events\s+WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	store := NewEventStore(db)
	got, err := store.GetEvent(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)

	mock.ExpectQuery(`FROM events\s+WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)
	_, err = store.GetEvent(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStore_InsertEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	form := domain.EventForm{
		Name:     "Hack Night",
		Category: strPtr("tech"),
		Keywords: []string{"ai"},
		Solo:     true,
	}
	rows := sqlmock.NewRows(eventCols)
	eventRow(rows, 1, "Hack Night", "tech", "{ai}")
	mock.ExpectQuery(`INSERT INTO events \(name, tagline, description, organizer, category, prize_pool, keywords, solo, registration_pitch, rules, highlights\)`).
		WithArgs("Hack Night", nil, nil, nil, "tech", int64(0), pq.Array([]string{"ai"}), true, nil, nil, nil).
		WillReturnRows(rows)

	store := NewEventStore(db)
	got, err := store.InsertEvent(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, []string{"ai"}, got.Keywords)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStore_UpdateEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewEventStore(db)

	rows := sqlmock.NewRows(eventCols)
	eventRow(rows, 42, "Renamed", nil, nil)
	mock.ExpectQuery(`UPDATE events`).
		WillReturnRows(rows)
	got, err := store.UpdateEvent(context.Background(), 42, domain.EventForm{Name: "Renamed", Solo: true})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)

	mock.ExpectQuery(`UPDATE events`).WillReturnError(sql.ErrNoRows)
	_, err = store.UpdateEvent(context.Background(), 404, domain.EventForm{Name: "Ghost"})
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStore_DeleteEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewEventStore(db)

	mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, store.DeleteEvent(context.Background(), 1))

	mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err = store.DeleteEvent(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

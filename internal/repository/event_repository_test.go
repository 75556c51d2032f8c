package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-hub-api/internal/models"
)

func TestEventRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectQuery("INSERT INTO events").
		WithArgs("Career Fair", "2024-05-02", "Main Hall", "Bring your CV", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow(11))

	event := &models.Event{Title: "Career Fair", Date: "2024-05-02", Venue: "Main Hall", Description: "Bring your CV", CreatedBy: 3}
	require.NoError(t, repo.Create(context.Background(), event))
	assert.Equal(t, int64(11), event.EventID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryListOrdersByDateString(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEventRepository(db)

	rows := sqlmock.NewRows([]string{"event_id", "title", "date", "venue", "description", "created_by"}).
		AddRow(1, "Early", "2024-01-05", "Hall A", "", 1).
		AddRow(2, "Late", "2024-01-20", "Hall B", "", 1)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT event_id, title, date, venue, description, created_by FROM events ORDER BY date")).
		WillReturnRows(rows)

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Early", events[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/campus-hub-api/internal/models"
)

// EventRepository manages persistence for campus events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event and assigns the generated identifier.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	const query = `INSERT INTO events (title, date, venue, description, created_by)
        VALUES ($1, $2, $3, $4, $5) RETURNING event_id`
	if err := r.db.QueryRowxContext(ctx, query,
		event.Title, event.Date, event.Venue, event.Description, event.CreatedBy,
	).Scan(&event.EventID); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// List returns all events ordered by the literal date string ascending. The
// date column is free text, so the ordering is lexicographic; "2" sorts after
// "10". ISO-formatted dates order correctly, non-padded ones do not.
func (r *EventRepository) List(ctx context.Context) ([]models.Event, error) {
	const query = `SELECT event_id, title, date, venue, description, created_by FROM events ORDER BY date`
	events := make([]models.Event, 0)
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

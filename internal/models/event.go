package models

// Event is a campus event posting. Events are immutable once created.
type Event struct {
	EventID     int64  `db:"event_id" json:"event_id"`
	Title       string `db:"title" json:"title"`
	Date        string `db:"date" json:"date"`
	Venue       string `db:"venue" json:"venue"`
	Description string `db:"description" json:"description,omitempty"`
	CreatedBy   int64  `db:"created_by" json:"created_by"`
}

// CreateEventRequest is the payload for posting a new event.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required" validate:"required"`
	Date        string `json:"date" binding:"required" validate:"required"`
	Venue       string `json:"venue" binding:"required" validate:"required"`
	Description string `json:"description"`
}

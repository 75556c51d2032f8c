package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Three tables, auto-assigned integer identifiers, unique email. Date columns
// stay TEXT on purpose; both item and event dates are caller-supplied free text.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS students (
		student_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		item_id BIGSERIAL PRIMARY KEY,
		student_id BIGINT REFERENCES students(student_id),
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		photo_path TEXT,
		status TEXT NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		event_id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		date TEXT NOT NULL,
		venue TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_by BIGINT REFERENCES students(student_id)
	)`,
}

// EnsureSchema creates the three tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

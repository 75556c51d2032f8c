package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/campus-hub-api/internal/models"
)

// ItemRepository manages persistence for lost & found postings.
type ItemRepository struct {
	db *sqlx.DB
}

// NewItemRepository constructs an ItemRepository.
func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create inserts a new item and assigns the generated identifier.
func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO items (student_id, type, title, category, description, date, location, photo_path, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING item_id`
	if err := r.db.QueryRowxContext(ctx, query,
		item.StudentID, item.Type, item.Title, item.Category, item.Description,
		item.Date, item.Location, item.PhotoPath, item.Status, item.CreatedAt,
	).Scan(&item.ItemID); err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// Search returns active items matching the filter, most recent first. The
// query term matches title, location or category as a case-sensitive
// substring; Postgres LIKE is deliberately case-sensitive here.
func (r *ItemRepository) Search(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	query := `SELECT item_id, student_id, type, title, category, description, date, location, photo_path, status, created_at
        FROM items WHERE status = $1`
	args := []interface{}{models.ItemStatusActive}

	if filter.Query != "" {
		idx := len(args) + 1
		query += fmt.Sprintf(" AND (title LIKE $%d OR location LIKE $%d OR category LIKE $%d)", idx, idx, idx)
		args = append(args, "%"+filter.Query+"%")
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", len(args)+1)
		args = append(args, filter.Type)
	}

	query += " ORDER BY created_at DESC"

	items := make([]models.Item, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return items, nil
}

// FindByID fetches a single item regardless of status.
func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*models.Item, error) {
	const query = `SELECT item_id, student_id, type, title, category, description, date, location, photo_path, status, created_at
        FROM items WHERE item_id = $1 LIMIT 1`
	var item models.Item
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find item by id: %w", err)
	}
	return &item, nil
}

// UpdateStatus sets the lifecycle state of an item.
func (r *ItemRepository) UpdateStatus(ctx context.Context, id int64, status models.ItemStatus) error {
	const query = `UPDATE items SET status = $2 WHERE item_id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, status); err != nil {
		return fmt.Errorf("update item status: %w", err)
	}
	return nil
}

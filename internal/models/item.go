package models

import "time"

// ItemType distinguishes lost postings from found postings.
type ItemType string

const (
	ItemTypeLost  ItemType = "lost"
	ItemTypeFound ItemType = "found"
)

// Valid reports whether the type is one of the two supported values.
func (t ItemType) Valid() bool {
	return t == ItemTypeLost || t == ItemTypeFound
}

// ItemStatus is the lifecycle state of an item. The transition is one-way:
// active items may be resolved, resolved items stay resolved.
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusResolved ItemStatus = "resolved"
)

// Item is a lost-or-found posting created by a student.
type Item struct {
	ItemID      int64      `db:"item_id" json:"item_id"`
	StudentID   int64      `db:"student_id" json:"student_id"`
	Type        ItemType   `db:"type" json:"type"`
	Title       string     `db:"title" json:"title"`
	Category    string     `db:"category" json:"category,omitempty"`
	Description string     `db:"description" json:"description,omitempty"`
	// Date is the caller-supplied incident date, kept as free text and never
	// validated against a calendar.
	Date      string     `db:"date" json:"date,omitempty"`
	Location  string     `db:"location" json:"location,omitempty"`
	PhotoPath *string    `db:"photo_path" json:"photo_path,omitempty"`
	Status    ItemStatus `db:"status" json:"status"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// ItemFilter captures the search criteria for browsing active items.
type ItemFilter struct {
	// Query matches title, location or category as a case-sensitive substring.
	Query string
	// Type restricts results to an exact item type when non-empty.
	Type string
}

// CreateItemRequest is the payload for posting a new item.
type CreateItemRequest struct {
	Type        string `form:"type" json:"type" binding:"required" validate:"required"`
	Title       string `form:"title" json:"title" binding:"required" validate:"required"`
	Category    string `form:"category" json:"category"`
	Description string `form:"description" json:"description"`
	Date        string `form:"date" json:"date"`
	Location    string `form:"location" json:"location"`
}

// PhotoUpload carries the raw bytes of an optional item photo together with
// the client-suggested filename.
type PhotoUpload struct {
	Filename string
	Data     []byte
}

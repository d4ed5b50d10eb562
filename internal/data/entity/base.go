package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base holds the columns shared by every soft-deletable table.
type Base struct {
	ID        uuid.UUID  `db:"id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// Trashed reports whether the row has been soft deleted.
func (b Base) Trashed() bool {
	return b.DeletedAt != nil
}

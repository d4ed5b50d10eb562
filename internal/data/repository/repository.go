package repository

import (
	"errors"

	"video-catalog/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is returned when an id does not resolve to a row in the
// requested scope (live or trashed).
var ErrNotFound = errors.New("record not found")

type Repository struct {
	Category CategoryRepository
	Genre    GenreRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Category: NewCategoryRepository(db, log),
		Genre:    NewGenreRepository(db, log),
	}
}

package usecase

import (
	"fmt"

	"video-catalog/internal/data/repository"
	"video-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is returned (wrapped) when an id does not resolve to a record.
var ErrNotFound = repository.ErrNotFound

type Service struct {
	Category CategoryService
	Genre    GenreService
}

func NewService(repo *repository.Repository, validator *utils.Validator, log *zap.Logger) *Service {
	return &Service{
		Category: NewCategoryService(repo.Category, validator, log),
		Genre:    NewGenreService(repo.Genre, validator, log),
	}
}

// parseID treats a malformed id like an unknown one.
func parseID(kind, raw string) (uuid.UUID, error) {
	id, err := utils.ParseUUID(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s %s: %w", kind, raw, ErrNotFound)
	}
	return id, nil
}

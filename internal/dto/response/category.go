package response

import (
	"time"

	"video-catalog/internal/data/entity"
)

// CategoryResponse always carries every key; nulls are written explicitly.
type CategoryResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
		DeletedAt:   category.DeletedAt,
	}
}

func CategoriesToResponse(categories []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		out[i] = CategoryToResponse(category)
	}
	return out
}

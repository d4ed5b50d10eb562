package response

import (
	"time"

	"video-catalog/internal/data/entity"
)

type GenreResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:        genre.ID.String(),
		Name:      genre.Name,
		IsActive:  genre.IsActive,
		CreatedAt: genre.CreatedAt,
		UpdatedAt: genre.UpdatedAt,
		DeletedAt: genre.DeletedAt,
	}
}

func GenresToResponse(genres []*entity.Genre) []GenreResponse {
	out := make([]GenreResponse, len(genres))
	for i, genre := range genres {
		out[i] = GenreToResponse(genre)
	}
	return out
}

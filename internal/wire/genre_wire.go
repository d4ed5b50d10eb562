package wire

import (
	"video-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler) {
	r.Route("/api/genres", func(r chi.Router) {
		r.Get("/", genreHandler.GetGenres)
		r.Post("/", genreHandler.CreateGenre)

		r.Get("/trashed", genreHandler.GetTrashedGenres)
		r.Get("/trashed/{id}", genreHandler.GetTrashedGenreByID)

		r.Get("/{id}", genreHandler.GetGenreByID)
		r.Put("/{id}", genreHandler.UpdateGenre)
		r.Delete("/{id}", genreHandler.DeleteGenre)
		r.Post("/{id}/restore", genreHandler.RestoreGenre)
	})
}

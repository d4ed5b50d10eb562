package wire

import (
	"video-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCategory(r chi.Router, categoryHandler *adaptor.CategoryHandler) {
	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", categoryHandler.GetCategories)
		r.Post("/", categoryHandler.CreateCategory)

		// Soft deleted records, for audit
		r.Get("/trashed", categoryHandler.GetTrashedCategories)
		r.Get("/trashed/{id}", categoryHandler.GetTrashedCategoryByID)

		r.Get("/{id}", categoryHandler.GetCategoryByID)
		r.Put("/{id}", categoryHandler.UpdateCategory)
		r.Delete("/{id}", categoryHandler.DeleteCategory)
		r.Post("/{id}/restore", categoryHandler.RestoreCategory)
	})
}

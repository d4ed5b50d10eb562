package adaptor

import (
	"net/http"

	"video-catalog/internal/usecase"
	"video-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const categoryNotFound = "Category not found"

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "category")),
	}
}

// GetCategories handles GET /api/categories
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get categories", categoryNotFound)
		return
	}

	utils.ResponseSuccess(w, categories)
}

// GetCategoryByID handles GET /api/categories/{id}
func (h *CategoryHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetCategoryByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get category by ID", categoryNotFound)
		return
	}

	utils.ResponseSuccess(w, category)
}

// CreateCategory handles POST /api/categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(r.Context(), fields)
	if err != nil {
		handleServiceError(w, h.log, err, "create category", categoryNotFound)
		return
	}

	utils.ResponseCreated(w, category)
}

// UpdateCategory handles PUT /api/categories/{id}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		handleServiceError(w, h.log, err, "update category", categoryNotFound)
		return
	}

	utils.ResponseSuccess(w, category)
}

// DeleteCategory handles DELETE /api/categories/{id}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete category", categoryNotFound)
		return
	}

	utils.ResponseNoContent(w)
}

// GetTrashedCategories handles GET /api/categories/trashed
func (h *CategoryHandler) GetTrashedCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetTrashedCategories(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get trashed categories", categoryNotFound)
		return
	}

	utils.ResponseSuccess(w, categories)
}

// GetTrashedCategoryByID handles GET /api/categories/trashed/{id}
func (h *CategoryHandler) GetTrashedCategoryByID(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetTrashedCategoryByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get trashed category", categoryNotFound)
		return
	}

	utils.ResponseSuccess(w, category)
}

// RestoreCategory handles POST /api/categories/{id}/restore
func (h *CategoryHandler) RestoreCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.RestoreCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "restore category", categoryNotFound)
		return
	}

	utils.ResponseSuccess(w, category)
}

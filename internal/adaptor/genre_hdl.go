package adaptor

import (
	"net/http"

	"video-catalog/internal/usecase"
	"video-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const genreNotFound = "Genre not found"

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// GetGenres handles GET /api/genres
func (h *GenreHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetGenres(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get genres", genreNotFound)
		return
	}

	utils.ResponseSuccess(w, genres)
}

// GetGenreByID handles GET /api/genres/{id}
func (h *GenreHandler) GetGenreByID(w http.ResponseWriter, r *http.Request) {
	genre, err := h.service.GetGenreByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get genre by ID", genreNotFound)
		return
	}

	utils.ResponseSuccess(w, genre)
}

// CreateGenre handles POST /api/genres
func (h *GenreHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	genre, err := h.service.CreateGenre(r.Context(), fields)
	if err != nil {
		handleServiceError(w, h.log, err, "create genre", genreNotFound)
		return
	}

	utils.ResponseCreated(w, genre)
}

// UpdateGenre handles PUT /api/genres/{id}
func (h *GenreHandler) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	genre, err := h.service.UpdateGenre(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		handleServiceError(w, h.log, err, "update genre", genreNotFound)
		return
	}

	utils.ResponseSuccess(w, genre)
}

// DeleteGenre handles DELETE /api/genres/{id}
func (h *GenreHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteGenre(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete genre", genreNotFound)
		return
	}

	utils.ResponseNoContent(w)
}

// GetTrashedGenres handles GET /api/genres/trashed
func (h *GenreHandler) GetTrashedGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetTrashedGenres(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get trashed genres", genreNotFound)
		return
	}

	utils.ResponseSuccess(w, genres)
}

// GetTrashedGenreByID handles GET /api/genres/trashed/{id}
func (h *GenreHandler) GetTrashedGenreByID(w http.ResponseWriter, r *http.Request) {
	genre, err := h.service.GetTrashedGenreByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get trashed genre", genreNotFound)
		return
	}

	utils.ResponseSuccess(w, genre)
}

// RestoreGenre handles POST /api/genres/{id}/restore
func (h *GenreHandler) RestoreGenre(w http.ResponseWriter, r *http.Request) {
	genre, err := h.service.RestoreGenre(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "restore genre", genreNotFound)
		return
	}

	utils.ResponseSuccess(w, genre)
}

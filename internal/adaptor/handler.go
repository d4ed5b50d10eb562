package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"video-catalog/internal/usecase"
	"video-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Category *CategoryHandler
	Genre    *GenreHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Category: NewCategoryHandler(service.Category, log),
		Genre:    NewGenreHandler(service.Genre, log),
	}
}

var errInvalidBody = errors.New("request body must be a JSON object")

// decodeFields reads the body as a single JSON object. An empty body is an
// empty object so that missing fields surface as validation errors.
func decodeFields(r *http.Request) (map[string]any, error) {
	fields := map[string]any{}
	if r.Body == nil {
		return fields, nil
	}

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&fields)
	if errors.Is(err, io.EOF) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, errInvalidBody
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return nil, errInvalidBody
	}
	if fields == nil {
		return map[string]any{}, nil
	}
	return fields, nil
}

// handleServiceError maps service errors onto HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation, notFoundMsg string) {
	var verr *utils.ValidationError

	switch {
	case errors.As(err, &verr):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseValidationError(w, verr.Fields)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, notFoundMsg)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

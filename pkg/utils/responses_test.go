package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseValidationError(t *testing.T) {
	rec := httptest.NewRecorder()

	ResponseValidationError(rec, map[string][]string{"name": {"The name field is required."}})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "The given data was invalid.", body.Message)
	assert.Equal(t, []string{"The name field is required."}, body.Errors["name"])
}

func TestResponseNotFoundOmitsErrors(t *testing.T) {
	rec := httptest.NewRecorder()

	ResponseNotFound(rec, "Category not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Category not found"}`, rec.Body.String())
}

func TestResponseNoContent(t *testing.T) {
	rec := httptest.NewRecorder()

	ResponseNoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

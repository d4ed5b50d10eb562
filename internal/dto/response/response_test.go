package response

import (
	"encoding/json"
	"testing"
	"time"

	"video-catalog/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(t *testing.T, v any) map[string]any {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestCategoryResponseEmitsNulls(t *testing.T) {
	now := time.Now()
	category := &entity.Category{
		Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name: "movies",
	}

	out := keys(t, CategoryToResponse(category))

	assert.Len(t, out, 7)
	for _, key := range []string{"id", "name", "description", "is_active", "created_at", "updated_at", "deleted_at"} {
		assert.Contains(t, out, key)
	}
	assert.Nil(t, out["description"])
	assert.Nil(t, out["deleted_at"])
	assert.Equal(t, false, out["is_active"])
	assert.Equal(t, category.ID.String(), out["id"])
}

func TestGenreResponseKeys(t *testing.T) {
	now := time.Now()
	genre := &entity.Genre{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now, DeletedAt: &now},
		Name:     "drama",
		IsActive: true,
	}

	out := keys(t, GenreToResponse(genre))

	assert.Len(t, out, 6)
	assert.NotContains(t, out, "description")
	assert.NotNil(t, out["deleted_at"])
	assert.Equal(t, true, out["is_active"])
}

func TestCategoriesToResponseEmptyIsArray(t *testing.T) {
	body, err := json.Marshal(CategoriesToResponse(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

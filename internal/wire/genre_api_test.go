package wire

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"video-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createGenre(t *testing.T, baseURL string, fields map[string]any) map[string]any {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, baseURL+"/api/genres", fields)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	return decodeObject(t, body)
}

func TestGenreIndexAndShow(t *testing.T) {
	srv := newTestServer(t)
	created := createGenre(t, srv.URL, map[string]any{"name": "drama"})

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/genres", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/genres/"+created["id"].(string), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created, decodeObject(t, body))

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/genres/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Genre not found"}`, string(body))
}

func TestGenreStore(t *testing.T) {
	srv := newTestServer(t)

	created := createGenre(t, srv.URL, map[string]any{"name": "test post"})
	assert.True(t, utils.IsUUIDv4(created["id"].(string)))
	assert.Equal(t, true, created["is_active"])
	assert.Len(t, created, 6)
	assert.NotContains(t, created, "description")

	created = createGenre(t, srv.URL, map[string]any{"name": "test post", "is_active": false})
	assert.Equal(t, false, created["is_active"])
}

func TestGenreUpdate(t *testing.T) {
	srv := newTestServer(t)
	created := createGenre(t, srv.URL, map[string]any{"name": "test genre 1", "is_active": false})

	resp, body := doJSON(t, http.MethodPut, srv.URL+"/api/genres/"+created["id"].(string), map[string]any{"name": "test genre 2", "is_active": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := decodeObject(t, body)
	assert.Equal(t, "test genre 2", updated["name"])
	assert.Equal(t, true, updated["is_active"])
}

func TestGenreDestroyAndTrashed(t *testing.T) {
	srv := newTestServer(t)
	created := createGenre(t, srv.URL, map[string]any{"name": "drama"})
	id := created["id"].(string)

	resp, body := doJSON(t, http.MethodDelete, srv.URL+"/api/genres/"+id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, body)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/genres/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/genres/trashed/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, decodeObject(t, body)["deleted_at"])

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/genres/"+id+"/restore", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, decodeObject(t, body)["deleted_at"])
}

func TestGenreInvalidData(t *testing.T) {
	srv := newTestServer(t)
	created := createGenre(t, srv.URL, map[string]any{"name": "valid"})
	updateURL := srv.URL + "/api/genres/" + created["id"].(string)

	for _, target := range []struct{ method, url string }{
		{http.MethodPost, srv.URL + "/api/genres"},
		{http.MethodPut, updateURL},
	} {
		resp, body := doJSON(t, target.method, target.url, map[string]any{})
		out := decodeValidation(t, resp, body)
		assert.Equal(t, []string{"The name field is required."}, out.Errors["name"])
		assert.NotContains(t, out.Errors, "is_active")

		resp, body = doJSON(t, target.method, target.url, map[string]any{"name": strings.Repeat("a", 256)})
		out = decodeValidation(t, resp, body)
		assert.Equal(t, []string{"The name may not be greater than 255 characters."}, out.Errors["name"])

		resp, body = doJSON(t, target.method, target.url, map[string]any{"name": "test genre", "is_active": "true"})
		out = decodeValidation(t, resp, body)
		assert.Equal(t, []string{"The is active field must be true or false."}, out.Errors["is_active"])
		assert.NotContains(t, out.Errors, "name")
	}
}

package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"video-catalog/internal/usecase"
	"video-catalog/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDecodeFields(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    map[string]any
		wantErr bool
	}{
		{name: "empty body", body: "", want: map[string]any{}},
		{name: "null", body: "null", want: map[string]any{}},
		{name: "object", body: `{"name":"x","is_active":false}`, want: map[string]any{"name": "x", "is_active": false}},
		{name: "array", body: `["x"]`, wantErr: true},
		{name: "truncated", body: `{"name":`, wantErr: true},
		{name: "trailing whitespace", body: "{\"name\":\"x\"}\n\t ", want: map[string]any{"name": "x"}},
		{name: "trailing garbage", body: `{"name":"x"} junk`, wantErr: true},
		{name: "second object", body: `{"name":"x"}{"name":"y"}`, wantErr: true},
		{name: "stray brace", body: `{"name":"x"}}`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			fields, err := decodeFields(r)
			if tc.wantErr {
				assert.ErrorIs(t, err, errInvalidBody)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, fields)
		})
	}
}

func TestHandleServiceError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "validation",
			err:    &utils.ValidationError{Fields: map[string][]string{"name": {"The name field is required."}}},
			status: http.StatusUnprocessableEntity,
			body:   `{"message":"The given data was invalid.","errors":{"name":["The name field is required."]}}`,
		},
		{
			name:   "not found",
			err:    fmt.Errorf("category x: %w", usecase.ErrNotFound),
			status: http.StatusNotFound,
			body:   `{"message":"Category not found"}`,
		},
		{
			name:   "persistence",
			err:    errors.New("connection refused"),
			status: http.StatusInternalServerError,
			body:   `{"message":"Internal server error"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handleServiceError(w, zap.NewNop(), tc.err, "get category", categoryNotFound)

			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
			assert.True(t, json.Valid(w.Body.Bytes()))
		})
	}
}

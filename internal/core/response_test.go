// AngelaMos | 2026
// response_test.go

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantCode   string
	}{
		{
			name:       "validation",
			err:        ValidationError("quantity is required"),
			wantStatus: http.StatusBadRequest,
			wantError:  "quantity is required",
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "duplicate is a bad request",
			err:        DuplicateError("user with this email"),
			wantStatus: http.StatusBadRequest,
			wantError:  "user with this email already exists",
			wantCode:   "CONFLICT",
		},
		{
			name:       "not found",
			err:        NotFoundError("product"),
			wantStatus: http.StatusNotFound,
			wantError:  "product not found",
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "invalid token is forbidden",
			err:        TokenInvalidError(),
			wantStatus: http.StatusForbidden,
			wantError:  "invalid token",
			wantCode:   "TOKEN_INVALID",
		},
		{
			name:       "wrapped app error",
			err:        fmt.Errorf("handler: %w", UnauthorizedError("")),
			wantStatus: http.StatusUnauthorized,
			wantError:  "unauthorized",
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "unexpected error hides detail",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			JSONError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

			body := decodeError(t, rec)
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	t.Parallel()

	err := NotFoundError("order")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsAppError(fmt.Errorf("x: %w", err)))
	assert.False(t, IsAppError(ErrNotFound))
}

func TestMessageAndCreated(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Message(rec, "product deleted successfully")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"product deleted successfully"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	Created(rec, map[string]string{"id": "1"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"1"}`, rec.Body.String())
}

// AngelaMos | 2026
// handler_test.go

package message

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efarmlink/efarmlink-api/internal/middleware"
)

func headerIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Test-User")
		if id == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		ctx := middleware.WithClaims(r.Context(), &middleware.AccessTokenClaims{UserID: id})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func TestHandler_Messages(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	NewHandler(NewService(newMemoryRepo(testUsers()), nil)).RegisterRoutes(r, headerIdentity)

	do := func(method, path, body, user string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if user != "" {
			req.Header.Set("X-Test-User", user)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodPost, "/messages", `{"receiver_id":"`+farmerID+`","message_text":"hello"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(http.MethodPost, "/messages", `{"receiver_id":"`+buyerID+`","message_text":"hello"}`, buyerID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "you cannot message yourself")

	rec = do(http.MethodPost, "/messages", `{"receiver_id":"`+farmerID+`"}`, buyerID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "message_text is required")

	rec = do(http.MethodPost, "/messages", `{"receiver_id":"`+farmerID+`","message_text":"hello"}`, buyerID)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(http.MethodGet, "/messages/conversations", "", farmerID)
	require.Equal(t, http.StatusOK, rec.Code)
	var convs []ConversationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&convs))
	require.Len(t, convs, 1)
	assert.Equal(t, "Otieno", convs[0].OtherUserName)
	assert.Equal(t, 1, convs[0].UnreadCount)

	rec = do(http.MethodGet, "/messages/"+buyerID, "", farmerID)
	require.Equal(t, http.StatusOK, rec.Code)
	var thread []MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&thread))
	require.Len(t, thread, 1)
	assert.Equal(t, "hello", thread[0].MessageText)
	assert.Equal(t, "Otieno", thread[0].SenderName)

	rec = do(http.MethodGet, "/messages/not-a-user", "", farmerID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package interview

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageHandler(t *testing.T) {
	svc, _ := newTestService(singleQuestionSource(), nil)
	handler := NewHandler(svc)

	t.Run("InvalidBody", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/sendmessage", strings.NewReader("{broken"))
		rec := httptest.NewRecorder()

		handler.SendMessage(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MissingUserID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/sendmessage", strings.NewReader(`{"message":"hello"}`))
		rec := httptest.NewRecorder()

		handler.SendMessage(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("AsksQuestion", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/sendmessage", strings.NewReader(`{"message":"hello","user_id":"u1"}`))
		rec := httptest.NewRecorder()

		handler.SendMessage(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp sendMessageResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Contains(t, resp.Answer, "Question 1/3")
	})
}

package chat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockinterview/internal/chat"
)

// fakeGateway mimics an OpenAI-compatible chat completions endpoint and
// records the model each request asked for.
func fakeGateway(t *testing.T, reply string) (*httptest.Server, *[]string) {
	t.Helper()

	var models []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req struct {
			Model string `json:"model"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		models = append(models, req.Model)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "cmpl-1",
			"object": "chat.completion",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"message":       map[string]string{"role": "assistant", "content": reply},
					"finish_reason": "stop",
				},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &models
}

func newTestService(t *testing.T, reply string) (chat.Service, *[]string) {
	srv, models := fakeGateway(t, reply)
	provider := chat.NewGatewayProvider("test-key", srv.URL+"/v1")
	return chat.NewService(provider), models
}

func TestSendMessage(t *testing.T) {
	t.Run("ForwardsReply", func(t *testing.T) {
		svc, _ := newTestService(t, "Hello there!")

		resp, err := svc.SendMessage(context.Background(), chat.ChatRequest{Message: "hi", Model: "deepseek"})
		require.NoError(t, err)
		assert.Equal(t, "Hello there!", resp.Response)
		assert.Equal(t, "deepseek/deepseek-chat", resp.ModelUsed)
	})

	t.Run("DefaultModel", func(t *testing.T) {
		svc, models := newTestService(t, "ok")

		resp, err := svc.SendMessage(context.Background(), chat.ChatRequest{Message: "hi"})
		require.NoError(t, err)
		assert.Equal(t, chat.DefaultModel, resp.ModelUsed)
		require.Len(t, *models, 1)
		assert.Equal(t, chat.DefaultModel, (*models)[0])
	})

	t.Run("UnknownModelPassesThrough", func(t *testing.T) {
		svc, models := newTestService(t, "ok")

		resp, err := svc.SendMessage(context.Background(), chat.ChatRequest{Message: "hi", Model: "mistralai/mixtral-8x7b"})
		require.NoError(t, err)
		assert.Equal(t, "mistralai/mixtral-8x7b", resp.ModelUsed)
		assert.Equal(t, "mistralai/mixtral-8x7b", (*models)[0])
	})

	t.Run("GatewayError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream down", http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		svc := chat.NewService(chat.NewGatewayProvider("test-key", srv.URL+"/v1"))
		_, err := svc.SendMessage(context.Background(), chat.ChatRequest{Message: "hi"})
		require.Error(t, err)
	})
}

package chat

import "mockinterview/internal/config"

type ChatContainer struct {
	Handler *Handler
}

func NewChatContainer(cfg *config.Config) *ChatContainer {
	provider := NewGatewayProvider(cfg.OpenRouterAPIKey, cfg.OpenRouterBaseURL)
	service := NewService(provider)
	handler := NewHandler(service)

	return &ChatContainer{
		Handler: handler,
	}
}

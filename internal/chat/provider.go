package chat

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Provider sends one user message to an upstream completion model and returns
// the reply text.
type Provider interface {
	Complete(ctx context.Context, model, message string) (string, error)
}

type gatewayProvider struct {
	client *openai.Client
}

// NewGatewayProvider builds a Provider backed by an OpenAI-compatible chat
// completions gateway (OpenRouter in production).
func NewGatewayProvider(apiKey, baseURL string) Provider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &gatewayProvider{client: openai.NewClientWithConfig(cfg)}
}

func (p *gatewayProvider) Complete(ctx context.Context, model, message string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		MaxTokens:   1000,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from completion gateway")
	}
	return resp.Choices[0].Message.Content, nil
}

package chat

import (
	"context"

	"mockinterview/internal/config"
)

type Service interface {
	SendMessage(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

// SendMessage resolves the requested model (short aliases map to full gateway
// names, unknown names pass through unchanged) and forwards the message.
func (s *service) SendMessage(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	log := config.WithContext(ctx)

	model := req.Model
	if model == "" {
		model = DefaultModel
	}
	if full, ok := AvailableModels[model]; ok {
		model = full
	}

	reply, err := s.provider.Complete(ctx, model, req.Message)
	if err != nil {
		log.WithError(err).Errorf("completion request failed for model %s", model)
		return nil, err
	}

	return &ChatResponse{Response: reply, ModelUsed: model}, nil
}

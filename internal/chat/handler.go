package chat

import (
	"encoding/json"
	"net/http"

	"mockinterview/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("invalid request body for /chat")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SendMessage(r.Context(), req)
	if err != nil {
		http.Error(w, "failed to reach completion gateway", http.StatusBadGateway)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Models(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"available_models": AvailableModels,
		"default_model":    DefaultModel,
	})
}

package interview

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

type sendMessageRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type sendMessageResponse struct {
	Answer string `json:"answer"`
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("invalid request body for /sendmessage")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.UserID == "" {
		log.Warn("missing user_id in /sendmessage request")
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	answer := h.service.HandleMessage(r.Context(), req.UserID, req.Message)
	config.JSON(w, http.StatusOK, sendMessageResponse{Answer: answer})
}

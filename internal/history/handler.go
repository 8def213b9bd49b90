package history

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"mockinterview/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID := chi.URLParam(r, "userID")
	if userID == "" {
		http.Error(w, "user id required", http.StatusBadRequest)
		return
	}

	results, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("failed to list interview results")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, results)
}

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mockinterview/internal/chat"
	"mockinterview/internal/config"
	"mockinterview/internal/history"
	"mockinterview/internal/interview"
	"mockinterview/internal/middlewares"
	"mockinterview/internal/ws"
)

type RouterConfig struct {
	InterviewHandler *interview.Handler
	ChatHandler      *chat.Handler
	HistoryHandler   *history.Handler
	WSHandler        *ws.Handler
	AllowedOrigin    string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigin))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": "mock interview backend",
		})
	})

	r.Get("/start", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/chat", http.StatusTemporaryRedirect)
	})

	r.Post("/chat", cfg.ChatHandler.Chat)
	r.Get("/models", cfg.ChatHandler.Models)

	r.Post("/sendmessage", cfg.InterviewHandler.SendMessage)
	r.Get("/ws", cfg.WSHandler.Serve)

	r.Mount("/results", history.Routes(cfg.HistoryHandler))

	return r
}

package main

import (
	"net/http"

	"github.com/joho/godotenv"

	"mockinterview/internal/config"
	"mockinterview/internal/container"
	"mockinterview/internal/router"
)

func main() {
	_ = godotenv.Load()

	config.Init()
	log := config.Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	c := container.New(cfg)

	r := router.New(router.RouterConfig{
		InterviewHandler: c.InterviewContainer.Handler,
		ChatHandler:      c.ChatContainer.Handler,
		HistoryHandler:   c.HistoryContainer.Handler,
		WSHandler:        c.WSHandler,
		AllowedOrigin:    cfg.AllowedOrigin,
	})

	log.Infof("mock interview backend listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

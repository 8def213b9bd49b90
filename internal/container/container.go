package container

import (
	"context"
	"log"

	"mockinterview/internal/catalog"
	"mockinterview/internal/chat"
	"mockinterview/internal/config"
	"mockinterview/internal/history"
	"mockinterview/internal/interview"
	"mockinterview/internal/ws"
)

type Container struct {
	InterviewContainer *interview.InterviewContainer
	ChatContainer      *chat.ChatContainer
	HistoryContainer   *history.HistoryContainer
	WSHandler          *ws.Handler
}

func New(cfg *config.Config) *Container {
	if err := config.Connect(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	historyContainer, err := history.NewHistoryContainer(config.DB)
	if err != nil {
		log.Fatalf("failed to prepare result history: %v", err)
	}

	bank := catalog.NewCatalog(cfg.QuestionsDir)
	if _, err := bank.Categories(); err != nil {
		// Not fatal: the service keeps answering with the fixed failure
		// message until the question bank becomes readable.
		config.WithContext(context.Background()).
			WithError(err).Warnf("question bank unavailable at %s", cfg.QuestionsDir)
	}

	interviewContainer := interview.NewInterviewContainer(bank, historyContainer.Service)
	chatContainer := chat.NewChatContainer(cfg)
	wsHandler := ws.NewHandler(interviewContainer.Service)

	return &Container{
		InterviewContainer: interviewContainer,
		ChatContainer:      chatContainer,
		HistoryContainer:   historyContainer,
		WSHandler:          wsHandler,
	}
}

package history

import "gorm.io/gorm"

type HistoryContainer struct {
	Service Service
	Handler *Handler
}

func NewHistoryContainer(db *gorm.DB) (*HistoryContainer, error) {
	if err := db.AutoMigrate(&InterviewResult{}); err != nil {
		return nil, err
	}

	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &HistoryContainer{
		Service: service,
		Handler: handler,
	}, nil
}

package history

import (
	"context"

	"github.com/google/uuid"
	"mockinterview/internal/config"
)

type Service interface {
	RecordResult(ctx context.Context, userID string, total, correct int, score float64, grade string) error
	ListByUser(ctx context.Context, userID string) ([]*InterviewResult, error)
}

type service struct {
	repo ResultRepository
}

func NewService(repo ResultRepository) Service {
	return &service{repo: repo}
}

func (s *service) RecordResult(ctx context.Context, userID string, total, correct int, score float64, grade string) error {
	log := config.WithContext(ctx)

	result := &InterviewResult{
		ID:             uuid.New(),
		UserID:         userID,
		TotalQuestions: total,
		CorrectCount:   correct,
		Score:          score,
		Grade:          grade,
	}

	if err := s.repo.Create(result); err != nil {
		log.WithError(err).Error("failed to store interview result")
		return err
	}

	log.Info("interview result stored", "result_id", result.ID.String())
	return nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]*InterviewResult, error) {
	log := config.WithContext(ctx)

	results, err := s.repo.ListByUser(userID)
	if err != nil {
		log.WithError(err).Errorf("failed to list results for user %s", userID)
		return nil, err
	}
	return results, nil
}

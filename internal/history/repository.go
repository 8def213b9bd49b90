package history

import "gorm.io/gorm"

type ResultRepository interface {
	Create(result *InterviewResult) error
	ListByUser(userID string) ([]*InterviewResult, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *InterviewResult) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) ListByUser(userID string) ([]*InterviewResult, error) {
	var results []*InterviewResult
	if err := r.db.
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

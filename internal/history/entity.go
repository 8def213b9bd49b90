package history

import (
	"time"

	"github.com/google/uuid"
)

// InterviewResult is the persisted outcome of one completed interview session.
type InterviewResult struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         string    `gorm:"not null;index" json:"user_id"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	CorrectCount   int       `gorm:"not null" json:"correct_count"`
	Score          float64   `gorm:"not null" json:"score"`
	Grade          string    `gorm:"not null" json:"grade"`
	CompletedAt    time.Time `gorm:"autoCreateTime" json:"completed_at"`
}

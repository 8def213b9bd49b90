package interview

import "mockinterview/internal/catalog"

// QuestionQuota is the number of questions in one complete interview session.
const QuestionQuota = 3

// Session is the per-user quiz progress. Pending is the question currently
// awaiting an answer; nil means the next message asks a new one.
type Session struct {
	UserID        string
	QuestionCount int
	CorrectCount  int
	Pending       *catalog.Question
}

// Evaluation is the outcome of grading one submitted answer.
type Evaluation struct {
	Correct       bool
	CorrectAnswer string
	Hint          string
	Message       string
}

package interview

import (
	"fmt"
	"strings"

	"mockinterview/internal/catalog"
)

const (
	// GradeExcellent and friends are the qualitative bands of a final score.
	GradeExcellent        = "excellent"
	GradeGood             = "good"
	GradeSatisfactory     = "satisfactory"
	GradeNeedsImprovement = "needs improvement"
)

// GradeBand maps a percentage score to its qualitative band.
func GradeBand(percent float64) string {
	switch {
	case percent >= 90:
		return GradeExcellent
	case percent >= 70:
		return GradeGood
	case percent >= 50:
		return GradeSatisfactory
	default:
		return GradeNeedsImprovement
	}
}

// formatQuestion renders the prompt sent to the user for question number
// (1-based) of the session.
func formatQuestion(q *catalog.Question, number int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎯 Question %d/%d — %s (%s)\n\n", number, QuestionQuota, q.Category, q.Level)
	b.WriteString(q.Text)
	b.WriteString("\n")
	for _, opt := range q.Answers {
		fmt.Fprintf(&b, "\n%d. %s", opt.ID, opt.Text)
	}
	if q.Theme != "" {
		fmt.Fprintf(&b, "\n\nTopic: %s", q.Theme)
	}
	if q.Hint != "" {
		fmt.Fprintf(&b, "\n💡 Hint: %s", q.Hint)
	}
	b.WriteString("\n\nReply with the option number or the answer text.")

	return b.String()
}

// formatFeedback renders the grading reply for question number (1-based).
func formatFeedback(ev Evaluation, number int) string {
	var b strings.Builder

	b.WriteString(ev.Message)
	fmt.Fprintf(&b, "\nCorrect answer: %s", ev.CorrectAnswer)
	if ev.Hint != "" {
		fmt.Fprintf(&b, "\n💡 %s", ev.Hint)
	}
	fmt.Fprintf(&b, "\nProgress: %d/%d", number, QuestionQuota)

	return b.String()
}

// formatResults renders the final summary appended to the last grading reply.
func formatResults(correct, total int, percent float64, grade string) string {
	return fmt.Sprintf(
		"🏁 Interview complete! You answered %d of %d questions correctly (%.0f%%).\nResult: %s.\nSend any message to start a new interview.",
		correct, total, percent, grade,
	)
}

package interview

import (
	"strconv"
	"strings"

	"mockinterview/internal/catalog"
)

const (
	msgCorrect   = "✅ Correct!"
	msgIncorrect = "❌ Incorrect."
)

// Evaluate grades a raw user answer against a question. A numeric answer is
// matched against the correct option's id; anything else is compared against
// the correct option's text, trimmed and case-insensitive.
//
// When the correct answer id does not resolve to any option (or is missing),
// the first option is treated as the correct one. That quirk is long-standing
// observable behavior and is pinned by tests; do not fix it here without a
// product decision.
func Evaluate(q *catalog.Question, rawAnswer string) Evaluation {
	if len(q.Answers) == 0 {
		return Evaluation{Message: msgIncorrect}
	}

	correct := q.Answers[0]
	if q.CorrectID != nil {
		for _, opt := range q.Answers {
			if opt.ID == *q.CorrectID {
				correct = opt
				break
			}
		}
	}

	answer := strings.TrimSpace(rawAnswer)

	var ok bool
	if id, err := strconv.Atoi(answer); err == nil {
		ok = id == correct.ID
	} else {
		ok = strings.EqualFold(answer, strings.TrimSpace(correct.Text))
	}

	message := msgIncorrect
	if ok {
		message = msgCorrect
	}

	return Evaluation{
		Correct:       ok,
		CorrectAnswer: correct.Text,
		Hint:          q.Hint,
		Message:       message,
	}
}

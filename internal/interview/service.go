package interview

import (
	"context"

	"mockinterview/internal/catalog"
	"mockinterview/internal/config"
)

const (
	msgNoQuestions   = "😔 Sorry, I could not load any interview questions right now. Please try again later."
	msgInternalError = "😔 Something went wrong on our side. Please send your message again."
)

// Service is the single entry point of the quiz flow. Every inbound message
// either asks the user's next question or grades their answer to the pending
// one; after QuestionQuota graded answers the session ends with a summary.
type Service interface {
	HandleMessage(ctx context.Context, userID, text string) string
}

// ResultRecorder receives the final result of a completed session. Recording
// happens on a best-effort basis and never affects the reply.
type ResultRecorder interface {
	RecordResult(ctx context.Context, userID string, total, correct int, score float64, grade string) error
}

type service struct {
	store    SessionStore
	selector *catalog.Selector
	locks    *userLocks
	recorder ResultRecorder
}

// NewService builds the orchestrator. recorder may be nil when result history
// is disabled.
func NewService(store SessionStore, selector *catalog.Selector, recorder ResultRecorder) Service {
	return &service{
		store:    store,
		selector: selector,
		locks:    newUserLocks(),
		recorder: recorder,
	}
}

// HandleMessage runs one state-machine transition for the user. Messages from
// the same user are serialized; any panic below is contained here and turned
// into a generic apology, leaving the session as it was.
func (s *service) HandleMessage(ctx context.Context, userID, text string) (reply string) {
	log := config.WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("interview flow panicked for user %s: %v", userID, r)
			reply = msgInternalError
		}
	}()

	mu := s.locks.forUser(userID)
	mu.Lock()
	defer mu.Unlock()

	sess := s.store.GetOrCreate(userID)
	if sess.Pending != nil {
		return s.gradeAnswer(ctx, sess, text)
	}
	return s.askQuestion(ctx, sess)
}

func (s *service) askQuestion(ctx context.Context, sess *Session) string {
	log := config.WithContext(ctx)

	q, err := s.selector.Pick()
	if err != nil {
		log.WithError(err).Warnf("no question available for user %s", sess.UserID)
		return msgNoQuestions
	}

	sess.Pending = &q
	return formatQuestion(&q, sess.QuestionCount+1)
}

func (s *service) gradeAnswer(ctx context.Context, sess *Session, text string) string {
	log := config.WithContext(ctx)

	ev := Evaluate(sess.Pending, text)
	sess.Pending = nil
	sess.QuestionCount++
	if ev.Correct {
		sess.CorrectCount++
	}

	feedback := formatFeedback(ev, sess.QuestionCount)
	if sess.QuestionCount < QuestionQuota {
		return feedback
	}

	percent := float64(sess.CorrectCount) / float64(sess.QuestionCount) * 100
	grade := GradeBand(percent)

	if s.recorder != nil {
		if err := s.recorder.RecordResult(ctx, sess.UserID, sess.QuestionCount, sess.CorrectCount, percent, grade); err != nil {
			log.WithError(err).Errorf("failed to record result for user %s", sess.UserID)
		}
	}

	results := formatResults(sess.CorrectCount, sess.QuestionCount, percent, grade)
	s.store.Delete(sess.UserID)

	log.Infof("interview completed for user %s: %d/%d (%s)", sess.UserID, sess.CorrectCount, sess.QuestionCount, grade)
	return feedback + "\n\n" + results
}

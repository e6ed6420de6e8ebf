package app

import (
	"time"

	"quizmaster-service/internal/domain"
)

// Direction moves the attempt cursor across questions.
type Direction string

const (
	DirectionPrevious Direction = "previous"
	DirectionNext     Direction = "next"
)

// Attempt is one user's in-progress run at a single quiz. It carries a
// snapshot of the quiz so scoring holds even when the catalog entry changes
// or disappears mid-attempt. The attempt is exclusively owned by its user;
// stores key it by id and scope lookups to the owner.
//
// Lifecycle: created by Start, mutated by SelectAnswer and Advance, and
// discarded on Submit or Abandon. A retake is a brand-new attempt; nothing
// carries over.
type Attempt struct {
	ID        string          `json:"id"`
	QuizID    string          `json:"quizId"`
	UserID    string          `json:"userId"`
	Quiz      domain.Quiz     `json:"quiz"`
	Current   int             `json:"current"`
	Answers   []domain.Answer `json:"answers"`
	StartedAt time.Time       `json:"startedAt"`
}

func newAttempt(id string, quiz domain.Quiz, userID string, startedAt time.Time) (*Attempt, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if len(quiz.Questions) == 0 {
		return nil, domain.ErrEmptyQuiz
	}
	return &Attempt{
		ID:        id,
		QuizID:    quiz.ID,
		UserID:    userID,
		Quiz:      quiz,
		Current:   0,
		Answers:   make([]domain.Answer, len(quiz.Questions)),
		StartedAt: startedAt,
	}, nil
}

// CurrentQuestion returns the question the cursor points at.
func (a *Attempt) CurrentQuestion() domain.Question {
	return a.Quiz.Questions[a.Current]
}

// SelectAnswer records an option for the current question, overwriting any
// prior choice. An out-of-range index is rejected and leaves the attempt
// untouched.
func (a *Attempt) SelectAnswer(option int) error {
	if option < 0 || option >= len(a.CurrentQuestion().Options) {
		return domain.ErrInvalidOption
	}
	a.Answers[a.Current] = domain.Chosen(option)
	return nil
}

// Advance moves the cursor one question back or forward. Moving past either
// edge is a no-op. Navigation never clears or validates answers.
func (a *Attempt) Advance(dir Direction) error {
	switch dir {
	case DirectionPrevious:
		if a.Current > 0 {
			a.Current--
		}
	case DirectionNext:
		if a.Current < len(a.Quiz.Questions)-1 {
			a.Current++
		}
	default:
		return domain.Invalidf("unknown direction %q", dir)
	}
	return nil
}

// Score counts correct answers over the snapshot. An unanswered question
// never counts as correct, regardless of its index value.
func (a *Attempt) Score() (correct int, pct float64) {
	for i, q := range a.Quiz.Questions {
		if ans := a.Answers[i]; ans.Answered && ans.Index == q.CorrectAnswer {
			correct++
		}
	}
	// newAttempt guarantees at least one question.
	pct = 100 * float64(correct) / float64(len(a.Quiz.Questions))
	return correct, pct
}

// result freezes the attempt into an immutable Result. The answers slice is
// copied so the record never aliases live attempt state.
func (a *Attempt) result(id string, user domain.User, date time.Time) domain.Result {
	correct, pct := a.Score()
	answers := make([]domain.Answer, len(a.Answers))
	copy(answers, a.Answers)
	return domain.Result{
		ID:             id,
		QuizID:         a.Quiz.ID,
		QuizTitle:      a.Quiz.Title,
		UserID:         user.ID,
		UserName:       user.Name,
		Score:          pct,
		CorrectAnswers: correct,
		TotalQuestions: len(a.Quiz.Questions),
		Date:           date,
		Answers:        answers,
	}
}

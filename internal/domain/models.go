package domain

import "time"

// User is a registered account. PasswordHash never crosses the API boundary.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Question models an MCQ question. CorrectAnswer is a 0-based index into Options.
type Question struct {
	ID            int      `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Quiz is a titled collection of questions. CreatedBy is empty for the
// built-in sample quizzes.
type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category,omitempty"`
	Difficulty  string     `json:"difficulty,omitempty"`
	Questions   []Question `json:"questions"`
	CreatedBy   string     `json:"createdBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
}

// Result is the immutable scored outcome of one completed attempt.
// QuizTitle and UserName are denormalized snapshots; quizzes and users are
// not guaranteed to remain retrievable by id later.
type Result struct {
	ID             string    `json:"id"`
	QuizID         string    `json:"quizId"`
	QuizTitle      string    `json:"quizTitle"`
	UserID         string    `json:"userId"`
	UserName       string    `json:"userName"`
	Score          float64   `json:"score"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	Date           time.Time `json:"date"`
	Answers        []Answer  `json:"answers"`
}

// UserStats aggregates a user's result history.
type UserStats struct {
	QuizzesTaken      int     `json:"quizzesTaken"`
	QuestionsAnswered int     `json:"questionsAnswered"`
	AverageScore      float64 `json:"averageScore"`
}

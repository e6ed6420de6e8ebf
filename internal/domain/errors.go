package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated is returned when an operation requires a resolved user.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrInvalidCredentials is returned for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("check your email/password")
	// ErrEmailTaken is returned when registering with an already used email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound indicates the user record could not be loaded.
	ErrUserNotFound = errors.New("user not found")
	// ErrQuizNotFound indicates the quiz is in neither the samples nor the store.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrAttemptNotFound indicates no in-progress attempt matches the id and user.
	ErrAttemptNotFound = errors.New("attempt not found")
	// ErrInvalidOption is returned when a selected option index is out of range.
	ErrInvalidOption = errors.New("option index out of range")
	// ErrEmptyQuiz guards attempts over quizzes with no questions.
	ErrEmptyQuiz = errors.New("quiz has no questions")
	// ErrValidation is the base of all input validation failures.
	ErrValidation = errors.New("invalid input")
)

// Invalid wraps ErrValidation with a user-facing message.
func Invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// Invalidf is Invalid with formatting.
func Invalidf(format string, args ...any) error {
	return Invalid(fmt.Sprintf(format, args...))
}

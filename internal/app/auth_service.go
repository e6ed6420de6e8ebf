package app

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"quizmaster-service/internal/domain"
)

// UserRepository persists registered users with a uniqueness constraint on email.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
}

// TokenIssuer turns a user into an opaque bearer token and back.
type TokenIssuer interface {
	Issue(user domain.User) (string, error)
	Verify(token string) (string, error)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService registers accounts and exchanges credentials for tokens.
type AuthService struct {
	users  UserRepository
	tokens TokenIssuer
	now    func() time.Time
	newID  func() string
}

func NewAuthService(users UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens, now: time.Now, newID: uuid.NewString}
}

// Register creates an account and logs it straight in. Validation failures
// and duplicate emails abort before any state is written.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (domain.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return domain.User{}, "", domain.Invalid("all fields are required")
	}
	if !emailPattern.MatchString(email) {
		return domain.User{}, "", domain.Invalid("invalid email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, "", err
	}

	user, err := s.users.Create(ctx, domain.User{
		ID:           s.newID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	})
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

// Login exchanges credentials for a token. An unknown email and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.User{}, "", domain.Invalid("email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

// CurrentUser resolves a bearer token to the user it was issued for.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (domain.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return domain.User{}, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return domain.User{}, domain.ErrNotAuthenticated
		}
		return domain.User{}, err
	}
	return user, nil
}

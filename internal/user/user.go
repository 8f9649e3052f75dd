// Package user handles account registration and login. Accounts exist
// so visitors can keep bookmarks and likes across devices; there are no
// roles or profiles beyond that.
package user

import (
	"context"
	"errors"
	"time"

	"github.com/crayonzgrim/free-coders-books/internal/platform/crypto"
)

var (
	// ErrAlreadyExists is returned when the email is already registered.
	ErrAlreadyExists = errors.New("user already exists")
	// ErrNotFound is returned when no user matches.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is a registered account. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository defines the contract for user storage.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}

// Service provides account business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates an account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, email, username, password string) (User, error) {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrAlreadyExists
	}

	hashed, err := crypto.HashPassword(password)
	if err != nil {
		return User{}, err
	}

	u := User{
		Email:    email,
		Username: username,
		Password: hashed,
	}
	if err := s.repo.Create(ctx, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Authenticate verifies the email and password and returns the account.
// Lookup misses and bad passwords both map to ErrInvalidCredentials so
// the response does not reveal which emails are registered.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if !crypto.VerifyPassword(u.Password, password) {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

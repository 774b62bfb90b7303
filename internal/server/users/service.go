package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Asad-NCS/lostandfound/internal/common"
	"github.com/Asad-NCS/lostandfound/internal/domain"
	"github.com/Asad-NCS/lostandfound/internal/server/auth"
)

// Errors surfaced to API clients. The texts travel to the user verbatim, so
// they read as sentences.
var (
	ErrUsernameTaken      = errors.New("Username is already taken!")
	ErrEmailInUse         = errors.New("Email is already in use!")
	ErrMissingFields      = errors.New("Username, email and password are required.")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters.")
	ErrInvalidCredentials = errors.New("Invalid email or password")
)

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, jwtSecret []byte, tokenValidity time.Duration) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             jwtSecret,
		tokenValidityDuration: tokenValidity,
	}
}

// Register creates an account. Emails are stored lowercased; the username is
// kept as entered. Only an explicit "admin" role is honored, anything else
// becomes a regular user.
func (s *Service) Register(ctx context.Context, username, email, password, role string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInternal
	}
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailInUse
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInternal
	}

	if !strings.EqualFold(role, domain.RoleAdmin) {
		role = domain.RoleUser
	} else {
		role = domain.RoleAdmin
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrInternal
	}

	user, err := s.repo.Create(ctx, &User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user.ToDomain(), nil
}

// Login checks the credentials and issues a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", common.ErrInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrInternal
	}

	return user.ToDomain(), token, nil
}

// Get loads one user.
func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.ToDomain(), nil
}

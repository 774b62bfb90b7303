// Package services contains the application services of the client, sitting
// between the terminal UI and the remote-access layer. Lifecycle actions are
// gated here before any network round-trip; the backend re-validates and its
// refusals are surfaced verbatim.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Asad-NCS/lostandfound/internal/client/api"
	"github.com/Asad-NCS/lostandfound/internal/client/session"
	"github.com/Asad-NCS/lostandfound/internal/domain"
)

// Validation errors caught client-side before any request is sent.
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingSignupData  = errors.New("username, email and password are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// AuthService handles registration, login and logout, and owns the session
// lifecycle around them.
type AuthService struct {
	client api.Client
	store  *session.Store
}

func NewAuthService(client api.Client, store *session.Store) *AuthService {
	return &AuthService{client: client, store: store}
}

// Register creates an account. Returns the backend's confirmation message.
func (a *AuthService) Register(ctx context.Context, username, email, password, confirm, role string) (string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return "", ErrMissingSignupData
	}
	if len(password) < 6 {
		return "", ErrPasswordTooShort
	}
	if password != confirm {
		return "", ErrPasswordMismatch
	}
	if !strings.EqualFold(role, domain.RoleAdmin) {
		role = domain.RoleUser
	}

	return a.client.Register(ctx, api.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	})
}

// Login authenticates and installs the session (user + token). The token is
// attached to the transport for subsequent calls.
func (a *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	user := res.User
	a.client.SetToken(res.Token)
	// Persistence failure is logged by the store; login still succeeds
	// for this run.
	_ = a.store.Set(ctx, &session.Session{User: &user, Token: res.Token})
	return &user, nil
}

// Logout clears the session. It always succeeds locally; a failure to
// delete the persisted record is reported by the store's logger only.
func (a *AuthService) Logout(ctx context.Context) {
	a.client.SetToken("")
	_ = a.store.Set(ctx, nil)
}

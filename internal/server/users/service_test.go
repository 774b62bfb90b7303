package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asad-NCS/lostandfound/internal/domain"
)

func newTestService() *Service {
	return NewService(NewInMemoryRepository(), []byte("testsecret"), time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "Alice@Example.COM", "secret1", "")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, domain.RoleUser, user.Role)

	got, token, err := svc.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterConflicts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "secret1", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other@example.com", "secret1", "")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Register(ctx, "alice2", "ALICE@example.com", "secret1", "")
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "a@b.com", "secret1", "")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Register(ctx, "alice", "a@b.com", "12345", "")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegisterRoleNormalization(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	admin, err := svc.Register(ctx, "root", "root@example.com", "secret1", "ADMIN")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	user, err := svc.Register(ctx, "bob", "bob@example.com", "secret1", "superuser")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "secret1", "")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

package verifications

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asad-NCS/lostandfound/internal/domain"
	"github.com/Asad-NCS/lostandfound/internal/server/claims"
	"github.com/Asad-NCS/lostandfound/internal/server/users"
)

func setup(t *testing.T) (*Service, *domain.Claim) {
	t.Helper()
	ctx := context.Background()

	userRepo := users.NewInMemoryRepository()
	claimRepo := claims.NewInMemoryRepository()

	u, err := userRepo.Create(ctx, &users.User{Username: "alice", Email: "a@b.com", PasswordHash: "x", Role: domain.RoleUser})
	require.NoError(t, err)

	claim, err := claimRepo.Create(ctx, &domain.Claim{
		ItemID: 1, UserID: u.ID, Username: u.Username,
		Description: "mine", Status: domain.StatusPending,
	})
	require.NoError(t, err)

	return NewService(NewInMemoryRepository(), claimRepo, userRepo), claim
}

func TestRequestIssuesSixDigitCode(t *testing.T) {
	svc, claim := setup(t)

	v, err := svc.Request(context.Background(), claim.ID, claim.UserID)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), v.Code)
	assert.False(t, v.Verified)
}

func TestVerifyMatchesCode(t *testing.T) {
	svc, claim := setup(t)
	ctx := context.Background()

	v, err := svc.Request(ctx, claim.ID, claim.UserID)
	require.NoError(t, err)

	got, err := svc.Verify(ctx, v.Code, claim.ID)
	require.NoError(t, err)
	assert.True(t, got.Verified)
	require.NotNil(t, got.VerifiedAt)
}

func TestVerifyRejectsWrongCode(t *testing.T) {
	svc, claim := setup(t)
	ctx := context.Background()

	_, err := svc.Request(ctx, claim.ID, claim.UserID)
	require.NoError(t, err)

	_, err = svc.Verify(ctx, "000000x", claim.ID)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestVerifyRejectsExpiredCode(t *testing.T) {
	svc, claim := setup(t)
	ctx := context.Background()

	v, err := svc.Request(ctx, claim.ID, claim.UserID)
	require.NoError(t, err)

	v.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, svc.repo.Update(ctx, v))

	_, err = svc.Verify(ctx, v.Code, claim.ID)
	assert.ErrorIs(t, err, ErrCodeExpired)
}

func TestRequestUnknownClaim(t *testing.T) {
	svc, claim := setup(t)

	_, err := svc.Request(context.Background(), claim.ID+99, claim.UserID)
	assert.Error(t, err)
}

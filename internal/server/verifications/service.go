// Package verifications implements the one-time ownership code flow. It runs
// beside the claim lifecycle and never moves a claim between statuses.
package verifications

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/Asad-NCS/lostandfound/internal/common"
	"github.com/Asad-NCS/lostandfound/internal/server/claims"
	"github.com/Asad-NCS/lostandfound/internal/server/users"
)

var (
	ErrInvalidCode = errors.New("Invalid verification code")
	ErrCodeExpired = errors.New("Verification code has expired")
)

// codeTTL is how long an issued code stays usable.
const codeTTL = 10 * time.Minute

type Service struct {
	repo   Repository
	claims claims.Repository
	users  users.Repository
}

func NewService(repo Repository, claimRepo claims.Repository, userRepo users.Repository) *Service {
	return &Service{repo: repo, claims: claimRepo, users: userRepo}
}

// Request generates a 6-digit code for a claim. In production the code would
// be delivered to the item reporter out of band; the API response carries it
// so the flow is usable without a mail setup.
func (s *Service) Request(ctx context.Context, claimID, userID int64) (*Verification, error) {
	if _, err := s.claims.GetByID(ctx, claimID); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	code, err := randomCode()
	if err != nil {
		return nil, common.ErrInternal
	}

	return s.repo.Create(ctx, &Verification{
		ClaimID:   claimID,
		UserID:    userID,
		Code:      code,
		ExpiresAt: time.Now().Add(codeTTL),
		Verified:  false,
	})
}

// Verify checks a submitted code against the claim's issued codes.
func (s *Service) Verify(ctx context.Context, code string, claimID int64) (*Verification, error) {
	v, err := s.repo.GetByCodeAndClaim(ctx, code, claimID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}

	now := time.Now()
	if now.After(v.ExpiresAt) {
		return nil, ErrCodeExpired
	}
	v.Verified = true
	v.VerifiedAt = &now
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// ByClaim returns the latest verification issued for a claim.
func (s *Service) ByClaim(ctx context.Context, claimID int64) (*Verification, error) {
	return s.repo.GetByClaim(ctx, claimID)
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/Asad-NCS/lostandfound/internal/client/api"
	"github.com/Asad-NCS/lostandfound/internal/client/session"
	"github.com/Asad-NCS/lostandfound/internal/domain"
)

var (
	ErrMissingClaimDetails = errors.New("a description of your proof is required")
	ErrInvalidCode         = errors.New("the verification code must be 4 to 6 digits")
)

var codePattern = regexp.MustCompile(`^[0-9]{4,6}$`)

// ClaimService drives the claim lifecycle. Every action checks the local
// authorization gate first and refuses without contacting the server when the
// gate fails. The server runs the same checks again and its answer wins.
type ClaimService struct {
	client api.Client
	store  *session.Store
}

func NewClaimService(client api.Client, store *session.Store) *ClaimService {
	return &ClaimService{client: client, store: store}
}

// Submit files a claim on item with a textual description and an optional
// proof image.
func (s *ClaimService) Submit(ctx context.Context, item *domain.Item, description, proofImagePath string) (string, error) {
	user := s.store.User()
	if err := domain.CanSubmitClaim(user, item); err != nil {
		return "", err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return "", ErrMissingClaimDetails
	}

	return s.client.CreateClaim(ctx, domain.NewClaim{
		ItemID:      item.ID,
		UserID:      user.ID,
		Description: description,
	}, proofImagePath)
}

// Forward escalates a pending claim on the caller's own item to the admins.
func (s *ClaimService) Forward(ctx context.Context, item *domain.Item, claim *domain.Claim) (string, error) {
	user := s.store.User()
	if err := domain.CanForward(user, item, claim); err != nil {
		return "", err
	}
	return s.client.ForwardClaim(ctx, claim.ID, user.ID)
}

// Approve grants a forwarded claim. Admin only.
func (s *ClaimService) Approve(ctx context.Context, claim *domain.Claim) (string, error) {
	user := s.store.User()
	if err := domain.CanApprove(user, claim); err != nil {
		return "", err
	}
	return s.client.ApproveClaim(ctx, claim.ID, user.ID)
}

// Reject declines a forwarded claim with an optional reason. Admin only.
func (s *ClaimService) Reject(ctx context.Context, claim *domain.Claim, reason string) (string, error) {
	user := s.store.User()
	if err := domain.CanReject(user, claim); err != nil {
		return "", err
	}
	return s.client.RejectClaim(ctx, claim.ID, user.ID, strings.TrimSpace(reason))
}

// ForItem lists the claims filed against one item.
func (s *ClaimService) ForItem(ctx context.Context, itemID int64) ([]domain.Claim, error) {
	if s.store.User() == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return s.client.ClaimsByItem(ctx, itemID)
}

// Mine lists the claims the logged-in user has filed.
func (s *ClaimService) Mine(ctx context.Context) ([]domain.Claim, error) {
	user := s.store.User()
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return s.client.ClaimsByUser(ctx, user.ID)
}

// AdminReview lists the claims waiting for an admin decision.
func (s *ClaimService) AdminReview(ctx context.Context) ([]domain.Claim, error) {
	user := s.store.User()
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if !user.IsAdmin() {
		return nil, domain.ErrNotAdmin
	}
	return s.client.AdminReviewClaims(ctx)
}

// RequestVerification asks the backend to send a one-time code to the
// claimant. The claim's status is not touched by verification.
func (s *ClaimService) RequestVerification(ctx context.Context, claimID int64) (string, error) {
	user := s.store.User()
	if user == nil {
		return "", domain.ErrNotAuthenticated
	}
	return s.client.RequestVerification(ctx, claimID, user.ID)
}

// SubmitVerification checks a one-time code against the backend.
func (s *ClaimService) SubmitVerification(ctx context.Context, code string, claimID int64) (string, error) {
	if s.store.User() == nil {
		return "", domain.ErrNotAuthenticated
	}
	code = strings.TrimSpace(code)
	if !codePattern.MatchString(code) {
		return "", ErrInvalidCode
	}
	return s.client.SubmitVerification(ctx, code, claimID)
}

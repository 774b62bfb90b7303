// Package claims implements the claim lifecycle: submission on found items,
// forwarding by the item reporter and the admin decision. Status transitions
// go through the domain gates, so a claim can never reach an admin decision
// without passing through the reporter first.
package claims

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Asad-NCS/lostandfound/internal/domain"
	"github.com/Asad-NCS/lostandfound/internal/server/items"
	"github.com/Asad-NCS/lostandfound/internal/server/users"
)

// Errors surfaced to API clients verbatim.
var (
	ErrMissingDescription = errors.New("A description of your proof is required.")
	ErrDuplicateClaim     = errors.New("You already have an active claim for this item.")
)

// TxRunner runs fn atomically. The postgres repository manager backs it with
// a database transaction carried through the context.
type TxRunner interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	repo  Repository
	items items.Repository
	users users.Repository
	tx    TxRunner
}

func NewService(repo Repository, itemRepo items.Repository, userRepo users.Repository, tx TxRunner) *Service {
	return &Service{repo: repo, items: itemRepo, users: userRepo, tx: tx}
}

// Submit files a claim on an item. The claimant must not be the reporter,
// the item must be reported as found and unclaimed, and the claimant must
// not already have an active claim on it.
func (s *Service) Submit(ctx context.Context, in domain.NewClaim, proofImagePath string) (*domain.Claim, error) {
	claimant, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	item, err := s.items.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanSubmitClaim(claimant.ToDomain(), item); err != nil {
		return nil, err
	}

	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return nil, ErrMissingDescription
	}

	existing, err := s.repo.ByItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].UserID == claimant.ID && existing[i].Status.Active() {
			return nil, ErrDuplicateClaim
		}
	}

	return s.repo.Create(ctx, &domain.Claim{
		ItemID:         item.ID,
		UserID:         claimant.ID,
		Username:       claimant.Username,
		Description:    in.Description,
		ProofImagePath: proofImagePath,
		Status:         domain.StatusPending,
	})
}

// Forward escalates a pending claim to the admins. Only the reporter of the
// claimed item may do this.
func (s *Service) Forward(ctx context.Context, claimID, actorID int64) (*domain.Claim, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	claim, err := s.repo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	item, err := s.items.GetByID(ctx, claim.ItemID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanForward(actor.ToDomain(), item, claim); err != nil {
		return nil, err
	}

	claim.Status = domain.StatusForwarded
	if err := s.repo.Update(ctx, claim); err != nil {
		return nil, err
	}
	return claim, nil
}

// Approve grants a forwarded claim. The item is marked claimed by the
// claimant, and every other active claim on it is rejected automatically.
func (s *Service) Approve(ctx context.Context, claimID, adminID int64) (*domain.Claim, error) {
	admin, err := s.users.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	claim, err := s.repo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanApprove(admin.ToDomain(), claim); err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, claim.ItemID)
	if err != nil {
		return nil, err
	}
	if item.Claimed {
		return nil, domain.ErrItemClaimed
	}

	// One transaction, and the APPROVED write goes last: a partial failure
	// can leave the item claimed without an approved claim, but never two
	// approved claims on one item.
	err = s.tx.InTransaction(ctx, func(ctx context.Context) error {
		now := time.Now()
		item.Claimed = true
		item.ClaimedByUser = &domain.UserRef{ID: claim.UserID, Username: claim.Username}
		item.ClaimedDate = &now
		if err := s.items.Update(ctx, item); err != nil {
			return err
		}

		others, err := s.repo.ByItem(ctx, item.ID)
		if err != nil {
			return err
		}
		for i := range others {
			other := others[i]
			if other.ID == claim.ID || !other.Status.Active() {
				continue
			}
			other.Status = domain.StatusRejected
			other.RejectionReason = "Another claim for this item was approved."
			if err := s.repo.Update(ctx, &other); err != nil {
				return err
			}
		}

		claim.Status = domain.StatusApproved
		return s.repo.Update(ctx, claim)
	})
	if err != nil {
		return nil, err
	}

	return claim, nil
}

// Reject declines a forwarded claim. An empty reason gets the default text.
func (s *Service) Reject(ctx context.Context, claimID, adminID int64, reason string) (*domain.Claim, error) {
	admin, err := s.users.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	claim, err := s.repo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanReject(admin.ToDomain(), claim); err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "No reason provided."
	}

	claim.Status = domain.StatusRejected
	claim.RejectionReason = reason
	if err := s.repo.Update(ctx, claim); err != nil {
		return nil, err
	}
	return claim, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Claim, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ByItem(ctx context.Context, itemID int64) ([]domain.Claim, error) {
	return s.repo.ByItem(ctx, itemID)
}

func (s *Service) ByUser(ctx context.Context, userID int64) ([]domain.Claim, error) {
	return s.repo.ByUser(ctx, userID)
}

// ForAdminReview lists the claims waiting for an admin decision.
func (s *Service) ForAdminReview(ctx context.Context) ([]domain.Claim, error) {
	return s.repo.ByStatus(ctx, domain.StatusForwarded)
}

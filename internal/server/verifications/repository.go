package verifications

import "context"

type Repository interface {
	Create(ctx context.Context, v *Verification) (*Verification, error)
	GetByCodeAndClaim(ctx context.Context, code string, claimID int64) (*Verification, error)
	GetByClaim(ctx context.Context, claimID int64) (*Verification, error)
	Update(ctx context.Context, v *Verification) error
}

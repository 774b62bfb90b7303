package claims

import (
	"context"

	"github.com/Asad-NCS/lostandfound/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, claim *domain.Claim) (*domain.Claim, error)
	GetByID(ctx context.Context, id int64) (*domain.Claim, error)
	ByItem(ctx context.Context, itemID int64) ([]domain.Claim, error)
	ByUser(ctx context.Context, userID int64) ([]domain.Claim, error)
	ByStatus(ctx context.Context, status domain.ClaimStatus) ([]domain.Claim, error)
	Update(ctx context.Context, claim *domain.Claim) error
}

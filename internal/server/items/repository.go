package items

import (
	"context"

	"github.com/Asad-NCS/lostandfound/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
}

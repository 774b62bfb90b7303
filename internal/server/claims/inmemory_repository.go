package claims

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Asad-NCS/lostandfound/internal/common"
	"github.com/Asad-NCS/lostandfound/internal/domain"
)

type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*domain.Claim
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, byID: make(map[int64]*domain.Claim)}
}

func (r *InMemoryRepository) Create(ctx context.Context, claim *domain.Claim) (*domain.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *claim
	cp.ID = r.nextID
	cp.ClaimDate = time.Now()
	r.nextID++
	r.byID[cp.ID] = &cp

	out := cp
	return &out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*domain.Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	claim, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *claim
	return &cp, nil
}

func (r *InMemoryRepository) ByItem(ctx context.Context, itemID int64) ([]domain.Claim, error) {
	return r.list(func(c *domain.Claim) bool { return c.ItemID == itemID }), nil
}

func (r *InMemoryRepository) ByUser(ctx context.Context, userID int64) ([]domain.Claim, error) {
	return r.list(func(c *domain.Claim) bool { return c.UserID == userID }), nil
}

func (r *InMemoryRepository) ByStatus(ctx context.Context, status domain.ClaimStatus) ([]domain.Claim, error) {
	return r.list(func(c *domain.Claim) bool { return c.Status == status }), nil
}

func (r *InMemoryRepository) list(match func(*domain.Claim) bool) []domain.Claim {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var claims []domain.Claim
	for _, c := range r.byID {
		if match(c) {
			claims = append(claims, *c)
		}
	}
	sort.Slice(claims, func(i, j int) bool { return claims[i].ID < claims[j].ID })
	return claims
}

func (r *InMemoryRepository) Update(ctx context.Context, claim *domain.Claim) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[claim.ID]; !ok {
		return common.ErrNotFound
	}
	cp := *claim
	r.byID[claim.ID] = &cp
	return nil
}

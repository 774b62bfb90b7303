package verifications

import (
	"context"
	"sync"

	"github.com/Asad-NCS/lostandfound/internal/common"
)

type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*Verification
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, byID: make(map[int64]*Verification)}
}

func (r *InMemoryRepository) Create(ctx context.Context, v *Verification) (*Verification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *v
	cp.ID = r.nextID
	r.nextID++
	r.byID[cp.ID] = &cp

	out := cp
	return &out, nil
}

func (r *InMemoryRepository) GetByCodeAndClaim(ctx context.Context, code string, claimID int64) (*Verification, error) {
	return r.find(func(v *Verification) bool { return v.Code == code && v.ClaimID == claimID })
}

func (r *InMemoryRepository) GetByClaim(ctx context.Context, claimID int64) (*Verification, error) {
	return r.find(func(v *Verification) bool { return v.ClaimID == claimID })
}

func (r *InMemoryRepository) find(match func(*Verification) bool) (*Verification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Prefer the most recent code for a claim.
	var found *Verification
	for _, v := range r.byID {
		if match(v) && (found == nil || v.ID > found.ID) {
			found = v
		}
	}
	if found == nil {
		return nil, common.ErrNotFound
	}
	cp := *found
	return &cp, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, v *Verification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[v.ID]; !ok {
		return common.ErrNotFound
	}
	cp := *v
	r.byID[v.ID] = &cp
	return nil
}

package items

import (
	"context"
	"sort"
	"sync"

	"github.com/Asad-NCS/lostandfound/internal/common"
	"github.com/Asad-NCS/lostandfound/internal/domain"
)

type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*domain.Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, byID: make(map[int64]*domain.Item)}
}

func (r *InMemoryRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *item
	cp.ID = r.nextID
	r.nextID++
	r.byID[cp.ID] = &cp

	out := cp
	return &out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.Item, 0, len(r.byID))
	for _, item := range r.byID {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return items, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[item.ID]; !ok {
		return common.ErrNotFound
	}
	cp := *item
	r.byID[item.ID] = &cp
	return nil
}

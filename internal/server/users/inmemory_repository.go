package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Asad-NCS/lostandfound/internal/common"
)

// InMemoryRepository keeps users in a map. It backs tests and the in-memory
// repository manager.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, byID: make(map[int64]*User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := *user
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	r.nextID++
	r.byID[u.ID] = &u

	cp := u
	return &cp, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.find(func(u *User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *InMemoryRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	return r.find(func(u *User) bool { return u.Username == username })
}

func (r *InMemoryRepository) find(match func(*User) bool) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

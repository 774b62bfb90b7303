package db

import (
	"context"
	"database/sql"

	"github.com/Asad-NCS/lostandfound/internal/server/claims"
	"github.com/Asad-NCS/lostandfound/internal/server/items"
	"github.com/Asad-NCS/lostandfound/internal/server/users"
	"github.com/Asad-NCS/lostandfound/internal/server/verifications"
)

type InMemoryRepositoryManager struct {
	users         users.Repository
	items         items.Repository
	claims        claims.Repository
	verifications verifications.Repository
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Items() items.Repository {
	return m.items
}

func (m *InMemoryRepositoryManager) Claims() claims.Repository {
	return m.claims
}

func (m *InMemoryRepositoryManager) Verifications() verifications.Repository {
	return m.verifications
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		users:         users.NewInMemoryRepository(),
		items:         items.NewInMemoryRepository(),
		claims:        claims.NewInMemoryRepository(),
		verifications: verifications.NewInMemoryRepository(),
	}
}

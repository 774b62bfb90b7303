// Package db wires the repositories to their backing store. The postgres
// manager owns the connection and runs migrations; the in-memory manager
// backs tests.
package db

import (
	"context"
	"database/sql"

	"github.com/Asad-NCS/lostandfound/internal/server/claims"
	"github.com/Asad-NCS/lostandfound/internal/server/items"
	"github.com/Asad-NCS/lostandfound/internal/server/users"
	"github.com/Asad-NCS/lostandfound/internal/server/verifications"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	// InTransaction runs fn atomically when the backing store supports
	// transactions; the in-memory manager just runs fn.
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	Conn() *sql.DB
	Users() users.Repository
	Items() items.Repository
	Claims() claims.Repository
	Verifications() verifications.Repository
}

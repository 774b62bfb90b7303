package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Asad-NCS/lostandfound/internal/dbx"
	"github.com/Asad-NCS/lostandfound/internal/server/claims"
	"github.com/Asad-NCS/lostandfound/internal/server/items"
	"github.com/Asad-NCS/lostandfound/internal/server/migrations"
	"github.com/Asad-NCS/lostandfound/internal/server/users"
	"github.com/Asad-NCS/lostandfound/internal/server/verifications"
)

type PostgresRepositoryManager struct {
	db            *sql.DB
	users         users.Repository
	items         items.Repository
	claims        claims.Repository
	verifications verifications.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Items() items.Repository {
	return m.items
}

func (m *PostgresRepositoryManager) Claims() claims.Repository {
	return m.claims
}

func (m *PostgresRepositoryManager) Verifications() verifications.Repository {
	return m.verifications
}

func (m *PostgresRepositoryManager) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return dbx.InTransaction(ctx, m.db, fn)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	userRepo, err := users.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	itemRepo, err := items.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("item repo creation error: %w", err)
	}

	claimRepo, err := claims.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("claim repo creation error: %w", err)
	}

	verificationRepo, err := verifications.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("verification repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:            db,
		users:         userRepo,
		items:         itemRepo,
		claims:        claimRepo,
		verifications: verificationRepo,
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

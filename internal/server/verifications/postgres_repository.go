package verifications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Asad-NCS/lostandfound/internal/common"
	"github.com/Asad-NCS/lostandfound/internal/dbx"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, v *Verification) (*Verification, error) {

	query :=
		`INSERT INTO verifications (claim_id, user_id, code, expires_at, verified)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := dbx.From(ctx, r.db).QueryRowContext(ctx, query,
		v.ClaimID, v.UserID, v.Code, v.ExpiresAt, v.Verified).Scan(&v.ID)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return v, nil
}

func (r *PostgresRepository) GetByCodeAndClaim(ctx context.Context, code string, claimID int64) (*Verification, error) {
	return r.getOne(ctx, `code = $1 AND claim_id = $2`, code, claimID)
}

func (r *PostgresRepository) GetByClaim(ctx context.Context, claimID int64) (*Verification, error) {
	return r.getOne(ctx, `claim_id = $1`, claimID)
}

func (r *PostgresRepository) getOne(ctx context.Context, where string, args ...any) (*Verification, error) {
	query :=
		`SELECT id, claim_id, user_id, code, expires_at, verified, verified_at FROM verifications
		 WHERE ` + where + `
		 ORDER BY id DESC
		 LIMIT 1`

	v := &Verification{}
	err := dbx.From(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(
		&v.ID, &v.ClaimID, &v.UserID, &v.Code, &v.ExpiresAt, &v.Verified, &v.VerifiedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return v, nil
}

func (r *PostgresRepository) Update(ctx context.Context, v *Verification) error {

	query :=
		`UPDATE verifications
		 SET verified = $2, verified_at = $3
		 WHERE id = $1
		 `

	res, err := dbx.From(ctx, r.db).ExecContext(ctx, query, v.ID, v.Verified, v.VerifiedAt)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

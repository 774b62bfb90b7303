package claims

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Asad-NCS/lostandfound/internal/common"
	"github.com/Asad-NCS/lostandfound/internal/dbx"
	"github.com/Asad-NCS/lostandfound/internal/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

const claimColumns = `
	c.id, c.item_id, c.user_id, u.username, c.description,
	c.proof_image_path, c.claim_date, c.status, c.rejection_reason`

const claimFrom = `
	FROM claims c
	JOIN users u ON u.id = c.user_id`

func scanClaim(row interface{ Scan(...any) error }) (*domain.Claim, error) {
	claim := &domain.Claim{}

	var proofPath, reason sql.NullString

	err := row.Scan(
		&claim.ID, &claim.ItemID, &claim.UserID, &claim.Username, &claim.Description,
		&proofPath, &claim.ClaimDate, &claim.Status, &reason,
	)
	if err != nil {
		return nil, err
	}

	claim.ProofImagePath = proofPath.String
	claim.RejectionReason = reason.String
	return claim, nil
}

func (r *PostgresRepository) Create(ctx context.Context, claim *domain.Claim) (*domain.Claim, error) {

	query :=
		`INSERT INTO claims (item_id, user_id, description, proof_image_path, status)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		 RETURNING id, claim_date
		 `

	err := dbx.From(ctx, r.db).QueryRowContext(ctx, query,
		claim.ItemID, claim.UserID, claim.Description, claim.ProofImagePath,
		claim.Status).Scan(&claim.ID, &claim.ClaimDate)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return r.GetByID(ctx, claim.ID)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Claim, error) {
	query := `SELECT` + claimColumns + claimFrom + ` WHERE c.id = $1`

	claim, err := scanClaim(dbx.From(ctx, r.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return claim, nil
}

func (r *PostgresRepository) ByItem(ctx context.Context, itemID int64) ([]domain.Claim, error) {
	return r.list(ctx, `c.item_id = $1`, itemID)
}

func (r *PostgresRepository) ByUser(ctx context.Context, userID int64) ([]domain.Claim, error) {
	return r.list(ctx, `c.user_id = $1`, userID)
}

func (r *PostgresRepository) ByStatus(ctx context.Context, status domain.ClaimStatus) ([]domain.Claim, error) {
	return r.list(ctx, `c.status = $1`, string(status))
}

func (r *PostgresRepository) list(ctx context.Context, where string, arg any) ([]domain.Claim, error) {
	query := `SELECT` + claimColumns + claimFrom + ` WHERE ` + where + ` ORDER BY c.id`

	rows, err := dbx.From(ctx, r.db).QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var claims []domain.Claim
	for rows.Next() {
		claim, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		claims = append(claims, *claim)
	}
	return claims, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, claim *domain.Claim) error {

	query :=
		`UPDATE claims
		 SET status = $2, rejection_reason = NULLIF($3, '')
		 WHERE id = $1
		 `

	res, err := dbx.From(ctx, r.db).ExecContext(ctx, query, claim.ID, string(claim.Status), claim.RejectionReason)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

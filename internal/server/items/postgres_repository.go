package items

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

const itemColumns = `
	i.id, i.title, i.description, i.category, i.location, i.is_lost,
	i.claimed, i.image_url, i.claimed_date,
	u.id, u.username,
	cu.id, cu.username`

const itemFrom = `
	FROM items i
	JOIN users u ON u.id = i.user_id
	LEFT JOIN users cu ON cu.id = i.claimed_by_user_id`

func scanItem(row interface{ Scan(...any) error }) (*domain.Item, error) {
	item := &domain.Item{User: &domain.UserRef{}}

	var imageURL sql.NullString
	var claimedBy sql.NullInt64
	var claimedByName sql.NullString

	err := row.Scan(
		&item.ID, &item.Title, &item.Description, &item.Category, &item.Location,
		&item.IsLost, &item.Claimed, &imageURL, &item.ClaimedDate,
		&item.User.ID, &item.User.Username,
		&claimedBy, &claimedByName,
	)
	if err != nil {
		return nil, err
	}

	item.ImageURL = imageURL.String
	if claimedBy.Valid {
		item.ClaimedByUser = &domain.UserRef{ID: claimedBy.Int64, Username: claimedByName.String}
	}
	return item, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {

	query :=
		`INSERT INTO items (title, description, category, location, is_lost, image_url, user_id)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
		 RETURNING id
		 `

	err := dbx.From(ctx, r.db).QueryRowContext(ctx, query,
		item.Title, item.Description, item.Category, item.Location,
		item.IsLost, item.ImageURL, item.User.ID).Scan(&item.ID)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return r.GetByID(ctx, item.ID)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	query := `SELECT` + itemColumns + itemFrom + ` WHERE i.id = $1`

	item, err := scanItem(dbx.From(ctx, r.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Item, error) {
	query := `SELECT` + itemColumns + itemFrom + ` ORDER BY i.id DESC`

	rows, err := dbx.From(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, item *domain.Item) error {

	query :=
		`UPDATE items
		 SET claimed = $2, claimed_by_user_id = $3, claimed_date = $4
		 WHERE id = $1
		 `

	var claimedBy sql.NullInt64
	if item.ClaimedByUser != nil {
		claimedBy = sql.NullInt64{Int64: item.ClaimedByUser.ID, Valid: true}
	}

	res, err := dbx.From(ctx, r.db).ExecContext(ctx, query, item.ID, item.Claimed, claimedBy, item.ClaimedDate)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"time"

	"health-research-cms/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type impactRepo struct {
	db *pgxpool.Pool
}

func NewImpactRepository(db *pgxpool.Pool) domain.ImpactRepository {
	return &impactRepo{db: db}
}

func scanImpact(row pgx.Row) (*domain.Impact, error) {
	var i domain.Impact
	err := row.Scan(&i.ID, &i.Value, &i.Title, &i.Description, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *impactRepo) Create(ctx context.Context, impact *domain.Impact) error {
	query := `
		INSERT INTO impacts (value, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	now := time.Now()
	impact.CreatedAt = now
	impact.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		impact.Value, impact.Title, impact.Description, impact.CreatedAt, impact.UpdatedAt,
	).Scan(&impact.ID)
}

func (r *impactRepo) GetByID(ctx context.Context, id int64) (*domain.Impact, error) {
	query := `
		SELECT id, value, title, description, created_at, updated_at
		FROM impacts
		WHERE id = $1`

	impact, err := scanImpact(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return impact, nil
}

func (r *impactRepo) Fetch(ctx context.Context) ([]domain.Impact, error) {
	query := `
		SELECT id, value, title, description, created_at, updated_at
		FROM impacts
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var impacts []domain.Impact
	for rows.Next() {
		impact, err := scanImpact(rows)
		if err != nil {
			return nil, err
		}
		impacts = append(impacts, *impact)
	}
	return impacts, rows.Err()
}

func (r *impactRepo) Update(ctx context.Context, impact *domain.Impact) error {
	query := `UPDATE impacts SET value = $2, title = $3, description = $4, updated_at = $5 WHERE id = $1`

	impact.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		impact.ID, impact.Value, impact.Title, impact.Description, impact.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *impactRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM impacts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

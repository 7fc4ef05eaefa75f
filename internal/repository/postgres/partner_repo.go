package postgres

import (
	"context"
	"errors"
	"time"

	"health-research-cms/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type partnerRepo struct {
	db *pgxpool.Pool
}

func NewPartnerRepository(db *pgxpool.Pool) domain.PartnerRepository {
	return &partnerRepo{db: db}
}

const partnerColumns = `
	p.id, p.name, p.website_url, p.logo_id, p.created_at, p.updated_at,
	f.id, f.name, f.url, f.mime, f.size, f.created_at`

func scanPartner(row pgx.Row) (*domain.Partner, error) {
	var p domain.Partner
	var nf nullableFile
	err := row.Scan(
		&p.ID, &p.Name, &p.WebsiteURL, &p.LogoID, &p.CreatedAt, &p.UpdatedAt,
		&nf.ID, &nf.Name, &nf.URL, &nf.Mime, &nf.Size, &nf.Created,
	)
	if err != nil {
		return nil, err
	}
	p.Logo = nf.toStoredFile()
	return &p, nil
}

func (r *partnerRepo) Create(ctx context.Context, partner *domain.Partner) error {
	query := `
		INSERT INTO partners (name, website_url, logo_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	now := time.Now()
	partner.CreatedAt = now
	partner.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		partner.Name, partner.WebsiteURL, partner.LogoID, partner.CreatedAt, partner.UpdatedAt,
	).Scan(&partner.ID)
}

func (r *partnerRepo) GetByID(ctx context.Context, id int64) (*domain.Partner, error) {
	query := `
		SELECT ` + partnerColumns + `
		FROM partners p
		LEFT JOIN files f ON p.logo_id = f.id
		WHERE p.id = $1`

	partner, err := scanPartner(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return partner, nil
}

func (r *partnerRepo) Fetch(ctx context.Context) ([]domain.Partner, error) {
	query := `
		SELECT ` + partnerColumns + `
		FROM partners p
		LEFT JOIN files f ON p.logo_id = f.id
		ORDER BY p.name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partners []domain.Partner
	for rows.Next() {
		partner, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		partners = append(partners, *partner)
	}
	return partners, rows.Err()
}

func (r *partnerRepo) Update(ctx context.Context, partner *domain.Partner) error {
	query := `UPDATE partners SET name = $2, website_url = $3, logo_id = $4, updated_at = $5 WHERE id = $1`

	partner.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		partner.ID, partner.Name, partner.WebsiteURL, partner.LogoID, partner.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *partnerRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

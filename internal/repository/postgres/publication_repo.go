package postgres

import (
	"context"
	"errors"
	"time"

	"health-research-cms/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type publicationRepo struct {
	db *pgxpool.Pool
}

func NewPublicationRepository(db *pgxpool.Pool) domain.PublicationRepository {
	return &publicationRepo{db: db}
}

const publicationColumns = `
	p.id, p.title, p.authors, p.journal, p.link, p.abstract, p.image_id,
	p.created_at, p.updated_at,
	f.id, f.name, f.url, f.mime, f.size, f.created_at`

func scanPublication(row pgx.Row) (*domain.Publication, error) {
	var p domain.Publication
	var nf nullableFile
	err := row.Scan(
		&p.ID, &p.Title, &p.Authors, &p.Journal, &p.Link, &p.Abstract, &p.ImageID,
		&p.CreatedAt, &p.UpdatedAt,
		&nf.ID, &nf.Name, &nf.URL, &nf.Mime, &nf.Size, &nf.Created,
	)
	if err != nil {
		return nil, err
	}
	p.Image = nf.toStoredFile()
	return &p, nil
}

func (r *publicationRepo) Create(ctx context.Context, publication *domain.Publication) error {
	query := `
		INSERT INTO publications (title, authors, journal, link, abstract, image_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	now := time.Now()
	publication.CreatedAt = now
	publication.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		publication.Title, publication.Authors, publication.Journal, publication.Link,
		publication.Abstract, publication.ImageID, publication.CreatedAt, publication.UpdatedAt,
	).Scan(&publication.ID)
}

func (r *publicationRepo) GetByID(ctx context.Context, id int64) (*domain.Publication, error) {
	query := `
		SELECT ` + publicationColumns + `
		FROM publications p
		LEFT JOIN files f ON p.image_id = f.id
		WHERE p.id = $1`

	publication, err := scanPublication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return publication, nil
}

func (r *publicationRepo) Fetch(ctx context.Context) ([]domain.Publication, error) {
	query := `
		SELECT ` + publicationColumns + `
		FROM publications p
		LEFT JOIN files f ON p.image_id = f.id
		ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var publications []domain.Publication
	for rows.Next() {
		publication, err := scanPublication(rows)
		if err != nil {
			return nil, err
		}
		publications = append(publications, *publication)
	}
	return publications, rows.Err()
}

func (r *publicationRepo) Update(ctx context.Context, publication *domain.Publication) error {
	query := `
		UPDATE publications
		SET title = $2, authors = $3, journal = $4, link = $5, abstract = $6,
		    image_id = $7, updated_at = $8
		WHERE id = $1`

	publication.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		publication.ID, publication.Title, publication.Authors, publication.Journal,
		publication.Link, publication.Abstract, publication.ImageID, publication.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *publicationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM publications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

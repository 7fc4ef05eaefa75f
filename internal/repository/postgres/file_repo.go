package postgres

import (
	"context"
	"errors"
	"time"

	"health-research-cms/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type fileRepo struct {
	db *pgxpool.Pool
}

func NewFileRepository(db *pgxpool.Pool) domain.FileRepository {
	return &fileRepo{db: db}
}

func (r *fileRepo) Create(ctx context.Context, file *domain.StoredFile) error {
	query := `
		INSERT INTO files (name, url, mime, size, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	file.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, query,
		file.Name, file.URL, file.Mime, file.Size, file.CreatedAt,
	).Scan(&file.ID)
}

func (r *fileRepo) GetByID(ctx context.Context, id int64) (*domain.StoredFile, error) {
	query := `SELECT id, name, url, mime, size, created_at FROM files WHERE id = $1`

	var f domain.StoredFile
	err := r.db.QueryRow(ctx, query, id).Scan(&f.ID, &f.Name, &f.URL, &f.Mime, &f.Size, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *fileRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

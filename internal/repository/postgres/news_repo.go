package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"health-research-cms/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type newsRepo struct {
	db *pgxpool.Pool
}

func NewNewsRepository(db *pgxpool.Pool) domain.NewsRepository {
	return &newsRepo{db: db}
}

// Content blocks are stored as a JSONB document with image descriptors
// denormalized at write time, so list reads need no extra joins.
func (r *newsRepo) Create(ctx context.Context, article *domain.NewsArticle) error {
	blocks, err := json.Marshal(article.ContentBlocks)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO news_articles (title, date, content_blocks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		article.Title, article.Date, blocks, article.CreatedAt, article.UpdatedAt,
	).Scan(&article.ID)
}

func (r *newsRepo) GetByID(ctx context.Context, id int64) (*domain.NewsArticle, error) {
	query := `SELECT id, title, date, content_blocks, created_at, updated_at FROM news_articles WHERE id = $1`

	var a domain.NewsArticle
	var blocks []byte
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.Title, &a.Date, &blocks, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(blocks, &a.ContentBlocks); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *newsRepo) Fetch(ctx context.Context) ([]domain.NewsArticle, error) {
	query := `SELECT id, title, date, content_blocks, created_at, updated_at FROM news_articles ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []domain.NewsArticle
	for rows.Next() {
		var a domain.NewsArticle
		var blocks []byte
		if err := rows.Scan(&a.ID, &a.Title, &a.Date, &blocks, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(blocks, &a.ContentBlocks); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (r *newsRepo) Update(ctx context.Context, article *domain.NewsArticle) error {
	blocks, err := json.Marshal(article.ContentBlocks)
	if err != nil {
		return err
	}

	query := `UPDATE news_articles SET title = $2, date = $3, content_blocks = $4, updated_at = $5 WHERE id = $1`
	article.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query, article.ID, article.Title, article.Date, blocks, article.UpdatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *newsRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM news_articles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

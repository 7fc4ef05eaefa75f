package domain

import (
	"context"
	"time"
)

// ContentBlock is one section of a news article: a paragraph of rich
// text with an optional illustration.
type ContentBlock struct {
	Text    string      `json:"text"`
	ImageID *int64      `json:"imageId,omitempty"`
	Image   *StoredFile `json:"image,omitempty"`
}

type NewsArticle struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	Date          time.Time      `json:"date"`
	ContentBlocks []ContentBlock `json:"content_blocks"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type NewsRepository interface {
	Create(ctx context.Context, article *NewsArticle) error
	GetByID(ctx context.Context, id int64) (*NewsArticle, error)
	Fetch(ctx context.Context) ([]NewsArticle, error)
	Update(ctx context.Context, article *NewsArticle) error
	Delete(ctx context.Context, id int64) error
}

type NewsUsecase interface {
	CreateArticle(ctx context.Context, article *NewsArticle) error
	GetArticle(ctx context.Context, id int64) (*NewsArticle, error)
	ListArticles(ctx context.Context) ([]NewsArticle, error)
	UpdateArticle(ctx context.Context, article *NewsArticle) error
	DeleteArticle(ctx context.Context, id int64) error
}

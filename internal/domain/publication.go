package domain

import (
	"context"
	"time"
)

type Publication struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title"`
	Authors   string      `json:"authors"`
	Journal   string      `json:"journal"`
	Link      string      `json:"link"`
	Abstract  *string     `json:"abstract,omitempty"`
	ImageID   *int64      `json:"imageId,omitempty"`
	Image     *StoredFile `json:"image,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type PublicationRepository interface {
	Create(ctx context.Context, publication *Publication) error
	GetByID(ctx context.Context, id int64) (*Publication, error)
	Fetch(ctx context.Context) ([]Publication, error)
	Update(ctx context.Context, publication *Publication) error
	Delete(ctx context.Context, id int64) error
}

type PublicationUsecase interface {
	CreatePublication(ctx context.Context, publication *Publication) error
	GetPublication(ctx context.Context, id int64) (*Publication, error)
	ListPublications(ctx context.Context) ([]Publication, error)
	UpdatePublication(ctx context.Context, publication *Publication) error
	DeletePublication(ctx context.Context, id int64) error
}

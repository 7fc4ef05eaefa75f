package domain

import (
	"context"
	"time"
)

type Partner struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	WebsiteURL string      `json:"websiteUrl"`
	LogoID     *int64      `json:"logoId,omitempty"`
	Logo       *StoredFile `json:"logo,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type PartnerRepository interface {
	Create(ctx context.Context, partner *Partner) error
	GetByID(ctx context.Context, id int64) (*Partner, error)
	Fetch(ctx context.Context) ([]Partner, error)
	Update(ctx context.Context, partner *Partner) error
	Delete(ctx context.Context, id int64) error
}

type PartnerUsecase interface {
	CreatePartner(ctx context.Context, partner *Partner) error
	ListPartners(ctx context.Context) ([]Partner, error)
	UpdatePartner(ctx context.Context, partner *Partner) error
	DeletePartner(ctx context.Context, id int64) error
}

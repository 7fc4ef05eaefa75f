package domain

import (
	"context"
	"time"
)

// Impact is a headline statistic shown on the public site, e.g.
// value "120+" with title "Research Projects".
type Impact struct {
	ID          int64     `json:"id"`
	Value       string    `json:"value"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ImpactRepository interface {
	Create(ctx context.Context, impact *Impact) error
	GetByID(ctx context.Context, id int64) (*Impact, error)
	Fetch(ctx context.Context) ([]Impact, error)
	Update(ctx context.Context, impact *Impact) error
	Delete(ctx context.Context, id int64) error
}

type ImpactUsecase interface {
	CreateImpact(ctx context.Context, impact *Impact) error
	ListImpacts(ctx context.Context) ([]Impact, error)
	UpdateImpact(ctx context.Context, impact *Impact) error
	DeleteImpact(ctx context.Context, id int64) error
}

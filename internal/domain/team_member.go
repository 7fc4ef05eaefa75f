package domain

import (
	"context"
	"time"
)

type TeamMember struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Position  string      `json:"position"`
	Email     string      `json:"email"`
	Bio       *string     `json:"bio,omitempty"`
	Quote     *string     `json:"quote,omitempty"`
	ImageID   *int64      `json:"imageId,omitempty"`
	Image     *StoredFile `json:"image,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type TeamMemberRepository interface {
	Create(ctx context.Context, member *TeamMember) error
	GetByID(ctx context.Context, id int64) (*TeamMember, error)
	Fetch(ctx context.Context) ([]TeamMember, error)
	Update(ctx context.Context, member *TeamMember) error
	Delete(ctx context.Context, id int64) error
}

type TeamMemberUsecase interface {
	CreateMember(ctx context.Context, member *TeamMember) error
	GetMember(ctx context.Context, id int64) (*TeamMember, error)
	ListMembers(ctx context.Context) ([]TeamMember, error)
	UpdateMember(ctx context.Context, member *TeamMember) error
	DeleteMember(ctx context.Context, id int64) error
}

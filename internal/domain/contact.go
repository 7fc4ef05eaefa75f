package domain

import (
	"context"
	"time"
)

// Contact message statuses
const (
	ContactStatusNew  = "new"
	ContactStatusRead = "read"
)

// ContactInfo is a published contact channel for the organization.
type ContactInfo struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	MapLink   *string   `json:"maplink,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactMessage is a visitor-submitted message from the contact form.
type ContactMessage struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name" validate:"required"`
	Email         string    `json:"email" validate:"required,email"`
	Subject       string    `json:"subject" validate:"required"`
	Message       string    `json:"message" validate:"required"`
	ContactStatus string    `json:"contactStatus"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ContactRepository interface {
	CreateInfo(ctx context.Context, info *ContactInfo) error
	FetchInfos(ctx context.Context) ([]ContactInfo, error)
	UpdateInfo(ctx context.Context, info *ContactInfo) error
	DeleteInfo(ctx context.Context, id int64) error

	CreateMessage(ctx context.Context, msg *ContactMessage) error
	FetchMessages(ctx context.Context) ([]ContactMessage, error)
	UpdateMessageStatus(ctx context.Context, id int64, status string) error
	DeleteMessage(ctx context.Context, id int64) error
}

type ContactUsecase interface {
	SubmitMessage(ctx context.Context, msg *ContactMessage) error
	ListMessages(ctx context.Context) ([]ContactMessage, error)
	MarkMessageRead(ctx context.Context, id int64) error
	DeleteMessage(ctx context.Context, id int64) error

	CreateInfo(ctx context.Context, info *ContactInfo) error
	ListInfos(ctx context.Context) ([]ContactInfo, error)
	UpdateInfo(ctx context.Context, info *ContactInfo) error
	DeleteInfo(ctx context.Context, id int64) error
}

package domain

import (
	"context"
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateAccount(ctx context.Context, user *User) error

	// Password reset tokens are single use and expire server-side.
	CreateResetToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	GetUserByResetToken(ctx context.Context, token string) (*User, error)
	DeleteResetToken(ctx context.Context, token string) error
}

type AuthUsecase interface {
	// Login verifies credentials and issues a signed bearer token.
	// identifier may be a username or email.
	Login(ctx context.Context, identifier, password string) (string, *User, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
	UpdateAccount(ctx context.Context, user *User) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

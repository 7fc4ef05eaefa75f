package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"
	"health-research-cms/pkg/auth"
	"health-research-cms/pkg/email"
	"health-research-cms/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo     domain.UserRepository
	tokens       *auth.TokenIssuer
	emailService *email.EmailService
	frontendURL  string
	resetTTL     time.Duration
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	tokens *auth.TokenIssuer,
	emailService *email.EmailService,
	frontendURL string,
	resetTTL time.Duration,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:     userRepo,
		tokens:       tokens,
		emailService: emailService,
		frontendURL:  frontendURL,
		resetTTL:     resetTTL,
	}
}

func (u *authUsecase) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return "", nil, apperror.BadRequest("Identifier and password are required")
	}

	user, err := u.userRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, apperror.Unauthorized("Invalid identifier or password")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperror.Unauthorized("Invalid identifier or password")
	}

	token, err := u.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	return token, user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

func (u *authUsecase) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return apperror.BadRequest("Password must be at least 8 characters")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperror.Unauthorized("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}
	return u.userRepo.UpdatePassword(ctx, userID, string(hash))
}

func (u *authUsecase) UpdateAccount(ctx context.Context, user *domain.User) error {
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Username == "" || user.Email == "" {
		return apperror.BadRequest("Username and email are required")
	}
	return u.userRepo.UpdateAccount(ctx, user)
}

// ForgotPassword issues a single use reset token and emails the link.
// Unknown addresses are not an error: the endpoint must not reveal
// which emails have accounts.
func (u *authUsecase) ForgotPassword(ctx context.Context, emailAddr string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	user, err := u.userRepo.GetByIdentifier(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	token := uuid.NewString()
	expiresAt := time.Now().Add(u.resetTTL)
	if err := u.userRepo.CreateResetToken(ctx, user.ID, token, expiresAt); err != nil {
		return err
	}

	if !u.emailService.IsConfigured() {
		logger.Log.Warn("password reset requested but SMTP is not configured",
			slog.Int64("user_id", user.ID))
		return nil
	}

	resetURL := fmt.Sprintf("%s/admin/reset-password?token=%s", u.frontendURL, token)
	if err := u.emailService.SendResetEmail(user.Email, email.ResetEmailData{
		Username: user.Username,
		ResetURL: resetURL,
	}); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return apperror.BadRequest("Password must be at least 8 characters")
	}

	user, err := u.userRepo.GetUserByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.BadRequest("Invalid or expired reset token")
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}
	if err := u.userRepo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}
	return u.userRepo.DeleteResetToken(ctx, token)
}

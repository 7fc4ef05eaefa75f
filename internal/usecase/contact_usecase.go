package usecase

import (
	"context"
	"log/slog"
	"strings"

	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"
	"health-research-cms/pkg/email"
	"health-research-cms/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	contactRepo  domain.ContactRepository
	emailService *email.EmailService
	validate     *validator.Validate
}

func NewContactUsecase(
	contactRepo domain.ContactRepository,
	emailService *email.EmailService,
	validate *validator.Validate,
) domain.ContactUsecase {
	return &contactUsecase{
		contactRepo:  contactRepo,
		emailService: emailService,
		validate:     validate,
	}
}

// SubmitMessage stores the message and forwards it to the configured
// inbox. A send failure does not lose the message; the stored copy is
// the record of truth.
func (u *contactUsecase) SubmitMessage(ctx context.Context, msg *domain.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.ToLower(strings.TrimSpace(msg.Email))
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	if err := u.validate.Struct(msg); err != nil {
		return apperror.BadRequest("Invalid message: " + err.Error())
	}

	msg.ContactStatus = domain.ContactStatusNew
	if err := u.contactRepo.CreateMessage(ctx, msg); err != nil {
		return err
	}

	if u.emailService.IsConfigured() {
		if err := u.emailService.SendContactEmail(email.ContactEmailData{
			SenderName:  msg.Name,
			SenderEmail: msg.Email,
			Subject:     msg.Subject,
			Message:     msg.Message,
		}); err != nil {
			logger.Log.Error("failed to forward contact message",
				slog.Int64("message_id", msg.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}

func (u *contactUsecase) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return u.contactRepo.FetchMessages(ctx)
}

func (u *contactUsecase) MarkMessageRead(ctx context.Context, id int64) error {
	return u.contactRepo.UpdateMessageStatus(ctx, id, domain.ContactStatusRead)
}

func (u *contactUsecase) DeleteMessage(ctx context.Context, id int64) error {
	return u.contactRepo.DeleteMessage(ctx, id)
}

func (u *contactUsecase) CreateInfo(ctx context.Context, info *domain.ContactInfo) error {
	if info.Email == "" && info.Phone == "" && info.Address == "" {
		return apperror.BadRequest("At least one contact channel is required")
	}
	return u.contactRepo.CreateInfo(ctx, info)
}

func (u *contactUsecase) ListInfos(ctx context.Context) ([]domain.ContactInfo, error) {
	return u.contactRepo.FetchInfos(ctx)
}

func (u *contactUsecase) UpdateInfo(ctx context.Context, info *domain.ContactInfo) error {
	return u.contactRepo.UpdateInfo(ctx, info)
}

func (u *contactUsecase) DeleteInfo(ctx context.Context, id int64) error {
	return u.contactRepo.DeleteInfo(ctx, id)
}

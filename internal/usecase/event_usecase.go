package usecase

import (
	"context"

	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"
)

type eventUsecase struct {
	eventRepo domain.EventRepository
}

func NewEventUsecase(eventRepo domain.EventRepository) domain.EventUsecase {
	return &eventUsecase{eventRepo: eventRepo}
}

func validateEvent(event *domain.Event) error {
	if event.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	switch event.Mode {
	case domain.EventModeInPerson, domain.EventModeOnline, domain.EventModeHybrid:
	default:
		return apperror.BadRequest("Invalid event mode")
	}
	switch event.EventStatus {
	case domain.EventStatusUpcoming, domain.EventStatusInProgress,
		domain.EventStatusCompleted, domain.EventStatusCancelled:
	default:
		return apperror.BadRequest("Invalid event status")
	}
	if event.EndDate != nil && event.EndDate.Before(event.StartDate) {
		return apperror.BadRequest("End date cannot precede start date")
	}
	return nil
}

func (u *eventUsecase) CreateEvent(ctx context.Context, event *domain.Event) error {
	if event.EventStatus == "" {
		event.EventStatus = domain.EventStatusUpcoming
	}
	if err := validateEvent(event); err != nil {
		return err
	}
	if event.Slug == "" {
		event.Slug = domain.Slugify(event.Title)
	}
	return u.eventRepo.Create(ctx, event)
}

func (u *eventUsecase) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	return u.eventRepo.GetByID(ctx, id)
}

func (u *eventUsecase) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return u.eventRepo.Fetch(ctx)
}

func (u *eventUsecase) UpdateEvent(ctx context.Context, event *domain.Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}
	if event.Slug == "" {
		event.Slug = domain.Slugify(event.Title)
	}
	return u.eventRepo.Update(ctx, event)
}

func (u *eventUsecase) DeleteEvent(ctx context.Context, id int64) error {
	return u.eventRepo.Delete(ctx, id)
}

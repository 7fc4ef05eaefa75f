package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"health-research-cms/internal/domain"
	"health-research-cms/internal/metrics"
	"health-research-cms/pkg/apperror"
	"health-research-cms/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	vacancyRepo     domain.VacancyRepository
	validate        *validator.Validate
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	vacancyRepo domain.VacancyRepository,
	validate *validator.Validate,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		vacancyRepo:     vacancyRepo,
		validate:        validate,
	}
}

// Apply runs the eligibility rules against data fetched at submission
// time and creates the application when every rule passes. The vacancy
// and the candidate's prior applications are never taken from the
// caller.
func (u *applicationUsecase) Apply(ctx context.Context, app *domain.Application) error {
	app.Email = strings.ToLower(strings.TrimSpace(app.Email))
	app.Name = strings.TrimSpace(app.Name)

	if err := u.validate.Struct(app); err != nil {
		return apperror.BadRequest("Invalid application: " + err.Error())
	}
	if app.VacancyID == nil || *app.VacancyID <= 0 {
		return apperror.BadRequest("A vacancy is required")
	}

	vacancy, err := u.vacancyRepo.GetByID(ctx, *app.VacancyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Vacancy not found")
		}
		return err
	}

	now := time.Now()
	if vacancy.EffectiveStatus(now) == domain.VacancyStatusClosed {
		metrics.ApplicationsRejected.WithLabelValues("closed").Inc()
		return apperror.BadRequest(domain.ReasonVacancyClosed)
	}

	existing, err := u.applicationRepo.GetByEmail(ctx, app.Email)
	if err != nil {
		return err
	}

	if result := domain.CanApply(vacancy, existing); !result.Allowed {
		switch result.Reason {
		case domain.ReasonAlreadyApplied:
			metrics.ApplicationsRejected.WithLabelValues("duplicate").Inc()
		case domain.ReasonLimitReached:
			metrics.ApplicationsRejected.WithLabelValues("limit").Inc()
		}
		return apperror.BadRequest(result.Reason)
	}

	app.VacancyTitle = vacancy.Title
	app.AppliedAt = now
	if app.Qualification == "" {
		app.Qualification = domain.QualificationNotAssessed
	}

	if err := u.applicationRepo.Create(ctx, app); err != nil {
		// Concurrent submissions can both pass CanApply; the unique
		// constraint on (email, vacancy) is the authoritative guard.
		if errors.Is(err, domain.ErrDuplicate) {
			metrics.ApplicationsRejected.WithLabelValues("duplicate").Inc()
			return apperror.BadRequest(domain.ReasonAlreadyApplied)
		}
		return err
	}

	metrics.ApplicationsSubmitted.Inc()
	logger.Log.Info("application submitted",
		slog.Int64("application_id", app.ID),
		slog.Int64("vacancy_id", *app.VacancyID),
	)
	return nil
}

func (u *applicationUsecase) ListApplications(ctx context.Context) ([]domain.Application, error) {
	return u.applicationRepo.Fetch(ctx)
}

func (u *applicationUsecase) ListByVacancy(ctx context.Context, vacancyID int64) ([]domain.Application, error) {
	return u.applicationRepo.GetByVacancyID(ctx, vacancyID)
}

func (u *applicationUsecase) GetApplicationDetail(ctx context.Context, id int64) (*domain.Application, error) {
	return u.applicationRepo.GetByID(ctx, id)
}

func (u *applicationUsecase) AssessApplication(ctx context.Context, id int64, qualification string) error {
	switch qualification {
	case domain.QualificationNotAssessed,
		domain.QualificationFail,
		domain.QualificationPass,
		domain.QualificationReserve:
	default:
		return apperror.BadRequest("Invalid qualification value")
	}
	return u.applicationRepo.UpdateQualification(ctx, id, qualification)
}

func (u *applicationUsecase) DeleteApplication(ctx context.Context, id int64) error {
	return u.applicationRepo.Delete(ctx, id)
}

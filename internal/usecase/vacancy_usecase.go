package usecase

import (
	"context"
	"log/slog"
	"time"

	"health-research-cms/internal/domain"
	"health-research-cms/internal/metrics"
	"health-research-cms/pkg/apperror"
	"health-research-cms/pkg/logger"
)

type vacancyUsecase struct {
	vacancyRepo domain.VacancyRepository
}

func NewVacancyUsecase(vacancyRepo domain.VacancyRepository) domain.VacancyUsecase {
	return &vacancyUsecase{vacancyRepo: vacancyRepo}
}

func (u *vacancyUsecase) CreateVacancy(ctx context.Context, vacancy *domain.Vacancy) error {
	if vacancy.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if vacancy.RequiredCandidates < 0 {
		return apperror.BadRequest("RequiredCandidates cannot be negative")
	}
	if vacancy.RequiredCandidates == 0 {
		vacancy.RequiredCandidates = 1
	}
	if vacancy.Slug == "" {
		vacancy.Slug = domain.Slugify(vacancy.Title)
	}
	if vacancy.VacancyStatus == "" {
		vacancy.VacancyStatus = domain.VacancyStatusOpened
	}
	if !validVacancyStatus(vacancy.VacancyStatus) {
		return apperror.BadRequest("VacancyStatus must be 'opened' or 'closed'")
	}
	if vacancy.PostedAt.IsZero() {
		vacancy.PostedAt = time.Now()
	}

	return u.vacancyRepo.Create(ctx, vacancy)
}

func validVacancyStatus(status string) bool {
	return status == domain.VacancyStatusOpened || status == domain.VacancyStatusClosed
}

func (u *vacancyUsecase) GetVacancyDetails(ctx context.Context, id int64) (*domain.Vacancy, error) {
	return u.vacancyRepo.GetByID(ctx, id)
}

func (u *vacancyUsecase) ListVacancies(ctx context.Context) ([]domain.Vacancy, error) {
	return u.vacancyRepo.Fetch(ctx)
}

func (u *vacancyUsecase) UpdateVacancy(ctx context.Context, vacancy *domain.Vacancy) error {
	if vacancy.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if vacancy.RequiredCandidates <= 0 {
		return apperror.BadRequest("RequiredCandidates must be positive")
	}
	if vacancy.Slug == "" {
		vacancy.Slug = domain.Slugify(vacancy.Title)
	}

	// Fields omitted from the request keep their stored values rather
	// than being overwritten with zeroes.
	current, err := u.vacancyRepo.GetByID(ctx, vacancy.ID)
	if err != nil {
		return err
	}
	if vacancy.VacancyStatus == "" {
		vacancy.VacancyStatus = current.VacancyStatus
	}
	if !validVacancyStatus(vacancy.VacancyStatus) {
		return apperror.BadRequest("VacancyStatus must be 'opened' or 'closed'")
	}
	if vacancy.PostedAt.IsZero() {
		vacancy.PostedAt = current.PostedAt
	}

	return u.vacancyRepo.Update(ctx, vacancy)
}

func (u *vacancyUsecase) DeleteVacancy(ctx context.Context, id int64) error {
	return u.vacancyRepo.Delete(ctx, id)
}

// ReconcileStatuses recomputes the effective status of every vacancy and
// persists the ones that drifted. A failed write is logged and skipped so
// the remaining corrections still land; the next run retries it.
func (u *vacancyUsecase) ReconcileStatuses(ctx context.Context, now time.Time) ([]domain.StatusCorrection, error) {
	vacancies, err := u.vacancyRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	corrections := domain.ComputeStatusCorrections(vacancies, now)

	applied := make([]domain.StatusCorrection, 0, len(corrections))
	for _, c := range corrections {
		if err := u.vacancyRepo.UpdateStatus(ctx, c.VacancyID, c.NewStatus); err != nil {
			metrics.ReconcileFailures.Inc()
			logger.Log.Error("failed to persist vacancy status correction",
				slog.Int64("vacancy_id", c.VacancyID),
				slog.String("new_status", c.NewStatus),
				slog.String("error", err.Error()),
			)
			continue
		}
		metrics.StatusCorrections.Inc()
		logger.Log.Info("vacancy status corrected",
			slog.Int64("vacancy_id", c.VacancyID),
			slog.String("new_status", c.NewStatus),
		)
		applied = append(applied, c)
	}

	return applied, nil
}

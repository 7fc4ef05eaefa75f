package usecase

import (
	"context"

	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"
)

type impactUsecase struct {
	impactRepo domain.ImpactRepository
}

func NewImpactUsecase(impactRepo domain.ImpactRepository) domain.ImpactUsecase {
	return &impactUsecase{impactRepo: impactRepo}
}

func validateImpact(impact *domain.Impact) error {
	if impact.Value == "" {
		return apperror.BadRequest("Value is required")
	}
	if impact.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	return nil
}

func (u *impactUsecase) CreateImpact(ctx context.Context, impact *domain.Impact) error {
	if err := validateImpact(impact); err != nil {
		return err
	}
	return u.impactRepo.Create(ctx, impact)
}

func (u *impactUsecase) ListImpacts(ctx context.Context) ([]domain.Impact, error) {
	return u.impactRepo.Fetch(ctx)
}

func (u *impactUsecase) UpdateImpact(ctx context.Context, impact *domain.Impact) error {
	if err := validateImpact(impact); err != nil {
		return err
	}
	return u.impactRepo.Update(ctx, impact)
}

func (u *impactUsecase) DeleteImpact(ctx context.Context, id int64) error {
	return u.impactRepo.Delete(ctx, id)
}

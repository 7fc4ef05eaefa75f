package usecase

import (
	"context"

	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"
)

type partnerUsecase struct {
	partnerRepo domain.PartnerRepository
}

func NewPartnerUsecase(partnerRepo domain.PartnerRepository) domain.PartnerUsecase {
	return &partnerUsecase{partnerRepo: partnerRepo}
}

func (u *partnerUsecase) CreatePartner(ctx context.Context, partner *domain.Partner) error {
	if partner.Name == "" {
		return apperror.BadRequest("Name is required")
	}
	return u.partnerRepo.Create(ctx, partner)
}

func (u *partnerUsecase) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	return u.partnerRepo.Fetch(ctx)
}

func (u *partnerUsecase) UpdatePartner(ctx context.Context, partner *domain.Partner) error {
	if partner.Name == "" {
		return apperror.BadRequest("Name is required")
	}
	return u.partnerRepo.Update(ctx, partner)
}

func (u *partnerUsecase) DeletePartner(ctx context.Context, id int64) error {
	return u.partnerRepo.Delete(ctx, id)
}

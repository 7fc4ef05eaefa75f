package usecase

import (
	"context"

	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"
)

type publicationUsecase struct {
	publicationRepo domain.PublicationRepository
}

func NewPublicationUsecase(publicationRepo domain.PublicationRepository) domain.PublicationUsecase {
	return &publicationUsecase{publicationRepo: publicationRepo}
}

func (u *publicationUsecase) CreatePublication(ctx context.Context, publication *domain.Publication) error {
	if publication.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if publication.Authors == "" {
		return apperror.BadRequest("Authors is required")
	}
	return u.publicationRepo.Create(ctx, publication)
}

func (u *publicationUsecase) GetPublication(ctx context.Context, id int64) (*domain.Publication, error) {
	return u.publicationRepo.GetByID(ctx, id)
}

func (u *publicationUsecase) ListPublications(ctx context.Context) ([]domain.Publication, error) {
	return u.publicationRepo.Fetch(ctx)
}

func (u *publicationUsecase) UpdatePublication(ctx context.Context, publication *domain.Publication) error {
	if publication.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	return u.publicationRepo.Update(ctx, publication)
}

func (u *publicationUsecase) DeletePublication(ctx context.Context, id int64) error {
	return u.publicationRepo.Delete(ctx, id)
}

package usecase

import (
	"context"
	"time"

	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"
)

type newsUsecase struct {
	newsRepo domain.NewsRepository
}

func NewNewsUsecase(newsRepo domain.NewsRepository) domain.NewsUsecase {
	return &newsUsecase{newsRepo: newsRepo}
}

func (u *newsUsecase) CreateArticle(ctx context.Context, article *domain.NewsArticle) error {
	if article.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if len(article.ContentBlocks) == 0 {
		return apperror.BadRequest("At least one content block is required")
	}
	if article.Date.IsZero() {
		article.Date = time.Now()
	}
	return u.newsRepo.Create(ctx, article)
}

func (u *newsUsecase) GetArticle(ctx context.Context, id int64) (*domain.NewsArticle, error) {
	return u.newsRepo.GetByID(ctx, id)
}

func (u *newsUsecase) ListArticles(ctx context.Context) ([]domain.NewsArticle, error) {
	return u.newsRepo.Fetch(ctx)
}

func (u *newsUsecase) UpdateArticle(ctx context.Context, article *domain.NewsArticle) error {
	if article.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	return u.newsRepo.Update(ctx, article)
}

func (u *newsUsecase) DeleteArticle(ctx context.Context, id int64) error {
	return u.newsRepo.Delete(ctx, id)
}

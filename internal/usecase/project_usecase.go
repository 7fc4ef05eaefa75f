package usecase

import (
	"context"

	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"
)

type projectUsecase struct {
	projectRepo domain.ProjectRepository
}

func NewProjectUsecase(projectRepo domain.ProjectRepository) domain.ProjectUsecase {
	return &projectUsecase{projectRepo: projectRepo}
}

func (u *projectUsecase) CreateProject(ctx context.Context, project *domain.Project) error {
	if project.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if project.ProjectStatus == "" {
		project.ProjectStatus = "ongoing"
	}
	return u.projectRepo.Create(ctx, project)
}

func (u *projectUsecase) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	return u.projectRepo.GetByID(ctx, id)
}

func (u *projectUsecase) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return u.projectRepo.Fetch(ctx)
}

func (u *projectUsecase) UpdateProject(ctx context.Context, project *domain.Project) error {
	if project.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	return u.projectRepo.Update(ctx, project)
}

func (u *projectUsecase) DeleteProject(ctx context.Context, id int64) error {
	return u.projectRepo.Delete(ctx, id)
}

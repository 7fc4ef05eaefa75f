package domain

import (
	"context"
	"time"
)

type Project struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Summary       string      `json:"summary"`
	Description   string      `json:"description"`
	ProjectStatus string      `json:"projectStatus"` // ongoing / completed
	StartDate     *time.Time  `json:"startDate,omitempty"`
	EndDate       *time.Time  `json:"endDate,omitempty"`
	ImageID       *int64      `json:"imageId,omitempty"`
	Image         *StoredFile `json:"image,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id int64) (*Project, error)
	Fetch(ctx context.Context) ([]Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id int64) error
}

type ProjectUsecase interface {
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id int64) (*Project, error)
	ListProjects(ctx context.Context) ([]Project, error)
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, id int64) error
}

package postgres

import (
	"context"
	"errors"
	"time"

	"health-research-cms/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type projectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepo{db: db}
}

const projectColumns = `
	p.id, p.title, p.summary, p.description, p.project_status,
	p.start_date, p.end_date, p.image_id, p.created_at, p.updated_at,
	f.id, f.name, f.url, f.mime, f.size, f.created_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	var nf nullableFile
	err := row.Scan(
		&p.ID, &p.Title, &p.Summary, &p.Description, &p.ProjectStatus,
		&p.StartDate, &p.EndDate, &p.ImageID, &p.CreatedAt, &p.UpdatedAt,
		&nf.ID, &nf.Name, &nf.URL, &nf.Mime, &nf.Size, &nf.Created,
	)
	if err != nil {
		return nil, err
	}
	p.Image = nf.toStoredFile()
	return &p, nil
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (title, summary, description, project_status, start_date, end_date, image_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		project.Title, project.Summary, project.Description, project.ProjectStatus,
		project.StartDate, project.EndDate, project.ImageID,
		project.CreatedAt, project.UpdatedAt,
	).Scan(&project.ID)
}

func (r *projectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		LEFT JOIN files f ON p.image_id = f.id
		WHERE p.id = $1`

	project, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

func (r *projectRepo) Fetch(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		LEFT JOIN files f ON p.image_id = f.id
		ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

func (r *projectRepo) Update(ctx context.Context, project *domain.Project) error {
	query := `
		UPDATE projects
		SET title = $2, summary = $3, description = $4, project_status = $5,
		    start_date = $6, end_date = $7, image_id = $8, updated_at = $9
		WHERE id = $1`

	project.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		project.ID, project.Title, project.Summary, project.Description, project.ProjectStatus,
		project.StartDate, project.EndDate, project.ImageID, project.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

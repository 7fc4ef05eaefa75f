package postgres

import (
	"context"
	"errors"
	"time"

	"health-research-cms/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type vacancyRepo struct {
	db *pgxpool.Pool
}

func NewVacancyRepository(db *pgxpool.Pool) domain.VacancyRepository {
	return &vacancyRepo{db: db}
}

// vacancyColumns selects vacancy fields together with application counts.
// The pass count feeds the effective-status computation, so it must be
// fresh on every read.
const vacancyColumns = `
	v.id, v.title, v.slug, v.location, v.department, v.job_type,
	v.description, v.posted_at, v.deadline, v.required_candidates,
	v.vacancy_status, v.created_at, v.updated_at,
	COUNT(a.id) AS application_count,
	COUNT(a.id) FILTER (WHERE a.qualification = 'pass') AS passed_count`

func (r *vacancyRepo) Create(ctx context.Context, vacancy *domain.Vacancy) error {
	query := `
		INSERT INTO vacancies (title, slug, location, department, job_type, description, posted_at, deadline, required_candidates, vacancy_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	now := time.Now()
	vacancy.CreatedAt = now
	vacancy.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		vacancy.Title,
		vacancy.Slug,
		vacancy.Location,
		vacancy.Department,
		vacancy.JobType,
		vacancy.Description,
		vacancy.PostedAt,
		vacancy.Deadline,
		vacancy.RequiredCandidates,
		vacancy.VacancyStatus,
		vacancy.CreatedAt,
		vacancy.UpdatedAt,
	).Scan(&vacancy.ID)
}

func (r *vacancyRepo) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	query := `
		SELECT ` + vacancyColumns + `
		FROM vacancies v
		LEFT JOIN applications a ON a.vacancy_id = v.id
		WHERE v.id = $1
		GROUP BY v.id`

	var v domain.Vacancy
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Title, &v.Slug, &v.Location, &v.Department, &v.JobType,
		&v.Description, &v.PostedAt, &v.Deadline, &v.RequiredCandidates,
		&v.VacancyStatus, &v.CreatedAt, &v.UpdatedAt,
		&v.ApplicationCount, &v.PassedCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *vacancyRepo) Fetch(ctx context.Context) ([]domain.Vacancy, error) {
	query := `
		SELECT ` + vacancyColumns + `
		FROM vacancies v
		LEFT JOIN applications a ON a.vacancy_id = v.id
		GROUP BY v.id
		ORDER BY v.posted_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vacancies []domain.Vacancy
	for rows.Next() {
		var v domain.Vacancy
		if err := rows.Scan(
			&v.ID, &v.Title, &v.Slug, &v.Location, &v.Department, &v.JobType,
			&v.Description, &v.PostedAt, &v.Deadline, &v.RequiredCandidates,
			&v.VacancyStatus, &v.CreatedAt, &v.UpdatedAt,
			&v.ApplicationCount, &v.PassedCount,
		); err != nil {
			return nil, err
		}
		vacancies = append(vacancies, v)
	}
	return vacancies, rows.Err()
}

func (r *vacancyRepo) Update(ctx context.Context, vacancy *domain.Vacancy) error {
	query := `
		UPDATE vacancies
		SET title = $2, slug = $3, location = $4, department = $5, job_type = $6,
		    description = $7, posted_at = $8, deadline = $9, required_candidates = $10,
		    vacancy_status = $11, updated_at = $12
		WHERE id = $1`

	vacancy.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		vacancy.ID,
		vacancy.Title,
		vacancy.Slug,
		vacancy.Location,
		vacancy.Department,
		vacancy.JobType,
		vacancy.Description,
		vacancy.PostedAt,
		vacancy.Deadline,
		vacancy.RequiredCandidates,
		vacancy.VacancyStatus,
		vacancy.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus writes only the persisted status field. Used by the
// reconciler so corrections do not clobber concurrent admin edits to
// other fields.
func (r *vacancyRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE vacancies SET vacancy_status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a vacancy. Applications keep their denormalized title;
// the FK is ON DELETE SET NULL.
func (r *vacancyRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM vacancies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

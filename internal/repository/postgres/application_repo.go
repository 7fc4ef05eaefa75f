package postgres

import (
	"context"
	"errors"
	"time"

	"health-research-cms/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const uniqueViolation = "23505"

// Create inserts a new application. The UNIQUE (email, vacancy_id)
// constraint is the authoritative duplicate guard; the eligibility
// pre-check only provides the friendly error message fast path.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (name, email, phone_number, cover_letter, applied_at, qualification, vacancy_id, vacancy_title, resume_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Qualification == "" {
		app.Qualification = domain.QualificationNotAssessed
	}

	err := r.db.QueryRow(ctx, query,
		app.Name,
		app.Email,
		app.PhoneNumber,
		app.CoverLetter,
		app.AppliedAt,
		app.Qualification,
		app.VacancyID,
		app.VacancyTitle,
		app.ResumeID,
		app.CreatedAt,
		app.UpdatedAt,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

// applicationColumns joins the resume file so admin views can link to it.
const applicationColumns = `
	a.id, a.name, a.email, a.phone_number, a.cover_letter, a.applied_at,
	a.qualification, a.vacancy_id, a.vacancy_title, a.resume_id,
	a.created_at, a.updated_at,
	f.id, f.name, f.url, f.mime, f.size, f.created_at`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	var fileID *int64
	var fileName, fileURL, fileMime *string
	var fileSize *int64
	var fileCreated *time.Time

	err := row.Scan(
		&app.ID, &app.Name, &app.Email, &app.PhoneNumber, &app.CoverLetter, &app.AppliedAt,
		&app.Qualification, &app.VacancyID, &app.VacancyTitle, &app.ResumeID,
		&app.CreatedAt, &app.UpdatedAt,
		&fileID, &fileName, &fileURL, &fileMime, &fileSize, &fileCreated,
	)
	if err != nil {
		return nil, err
	}

	if fileID != nil {
		app.Resume = &domain.StoredFile{
			ID:        *fileID,
			Name:      *fileName,
			URL:       *fileURL,
			Mime:      *fileMime,
			Size:      *fileSize,
			CreatedAt: *fileCreated,
		}
	}
	return &app, nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications a
		LEFT JOIN files f ON a.resume_id = f.id
		WHERE a.id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *applicationRepo) queryApplications(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, *app)
	}
	return applications, rows.Err()
}

// GetByEmail returns every application for an email address. Eligibility
// decisions read through this at submission time, never from caller
// state.
func (r *applicationRepo) GetByEmail(ctx context.Context, email string) ([]domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications a
		LEFT JOIN files f ON a.resume_id = f.id
		WHERE LOWER(a.email) = LOWER($1)
		ORDER BY a.applied_at DESC`
	return r.queryApplications(ctx, query, email)
}

func (r *applicationRepo) GetByVacancyID(ctx context.Context, vacancyID int64) ([]domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications a
		LEFT JOIN files f ON a.resume_id = f.id
		WHERE a.vacancy_id = $1
		ORDER BY a.applied_at DESC`
	return r.queryApplications(ctx, query, vacancyID)
}

func (r *applicationRepo) Fetch(ctx context.Context) ([]domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications a
		LEFT JOIN files f ON a.resume_id = f.id
		ORDER BY a.applied_at DESC`
	return r.queryApplications(ctx, query)
}

func (r *applicationRepo) UpdateQualification(ctx context.Context, id int64, qualification string) error {
	query := `UPDATE applications SET qualification = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, qualification, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"time"

	"health-research-cms/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type eventRepo struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) domain.EventRepository {
	return &eventRepo{db: db}
}

const eventColumns = `
	e.id, e.title, e.slug, e.description, e.mode, e.event_status,
	e.start_date, e.end_date, e.location, e.image_id, e.created_at, e.updated_at,
	f.id, f.name, f.url, f.mime, f.size, f.created_at`

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	var nf nullableFile
	err := row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.Mode, &e.EventStatus,
		&e.StartDate, &e.EndDate, &e.Location, &e.ImageID, &e.CreatedAt, &e.UpdatedAt,
		&nf.ID, &nf.Name, &nf.URL, &nf.Mime, &nf.Size, &nf.Created,
	)
	if err != nil {
		return nil, err
	}
	e.Image = nf.toStoredFile()
	return &e, nil
}

func (r *eventRepo) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (title, slug, description, mode, event_status, start_date, end_date, location, image_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		event.Title, event.Slug, event.Description, event.Mode, event.EventStatus,
		event.StartDate, event.EndDate, event.Location, event.ImageID,
		event.CreatedAt, event.UpdatedAt,
	).Scan(&event.ID)
}

func (r *eventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		LEFT JOIN files f ON e.image_id = f.id
		WHERE e.id = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *eventRepo) Fetch(ctx context.Context) ([]domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		LEFT JOIN files f ON e.image_id = f.id
		ORDER BY e.start_date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

func (r *eventRepo) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events
		SET title = $2, slug = $3, description = $4, mode = $5, event_status = $6,
		    start_date = $7, end_date = $8, location = $9, image_id = $10, updated_at = $11
		WHERE id = $1`

	event.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		event.ID, event.Title, event.Slug, event.Description, event.Mode, event.EventStatus,
		event.StartDate, event.EndDate, event.Location, event.ImageID, event.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

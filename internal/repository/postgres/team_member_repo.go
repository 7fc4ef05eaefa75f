package postgres

import (
	"context"
	"errors"
	"time"

	"health-research-cms/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type teamMemberRepo struct {
	db *pgxpool.Pool
}

func NewTeamMemberRepository(db *pgxpool.Pool) domain.TeamMemberRepository {
	return &teamMemberRepo{db: db}
}

const teamMemberColumns = `
	m.id, m.name, m.position, m.email, m.bio, m.quote, m.image_id,
	m.created_at, m.updated_at,
	f.id, f.name, f.url, f.mime, f.size, f.created_at`

func scanTeamMember(row pgx.Row) (*domain.TeamMember, error) {
	var m domain.TeamMember
	var nf nullableFile
	err := row.Scan(
		&m.ID, &m.Name, &m.Position, &m.Email, &m.Bio, &m.Quote, &m.ImageID,
		&m.CreatedAt, &m.UpdatedAt,
		&nf.ID, &nf.Name, &nf.URL, &nf.Mime, &nf.Size, &nf.Created,
	)
	if err != nil {
		return nil, err
	}
	m.Image = nf.toStoredFile()
	return &m, nil
}

func (r *teamMemberRepo) Create(ctx context.Context, member *domain.TeamMember) error {
	query := `
		INSERT INTO team_members (name, position, email, bio, quote, image_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	now := time.Now()
	member.CreatedAt = now
	member.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		member.Name, member.Position, member.Email, member.Bio, member.Quote,
		member.ImageID, member.CreatedAt, member.UpdatedAt,
	).Scan(&member.ID)
}

func (r *teamMemberRepo) GetByID(ctx context.Context, id int64) (*domain.TeamMember, error) {
	query := `
		SELECT ` + teamMemberColumns + `
		FROM team_members m
		LEFT JOIN files f ON m.image_id = f.id
		WHERE m.id = $1`

	member, err := scanTeamMember(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return member, nil
}

func (r *teamMemberRepo) Fetch(ctx context.Context) ([]domain.TeamMember, error) {
	query := `
		SELECT ` + teamMemberColumns + `
		FROM team_members m
		LEFT JOIN files f ON m.image_id = f.id
		ORDER BY m.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *member)
	}
	return members, rows.Err()
}

func (r *teamMemberRepo) Update(ctx context.Context, member *domain.TeamMember) error {
	query := `
		UPDATE team_members
		SET name = $2, position = $3, email = $4, bio = $5, quote = $6,
		    image_id = $7, updated_at = $8
		WHERE id = $1`

	member.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		member.ID, member.Name, member.Position, member.Email, member.Bio,
		member.Quote, member.ImageID, member.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *teamMemberRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"time"

	"health-research-cms/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type contactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) CreateInfo(ctx context.Context, info *domain.ContactInfo) error {
	query := `
		INSERT INTO contact_infos (email, phone, address, maplink, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	now := time.Now()
	info.CreatedAt = now
	info.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		info.Email, info.Phone, info.Address, info.MapLink, info.CreatedAt, info.UpdatedAt,
	).Scan(&info.ID)
}

func (r *contactRepo) FetchInfos(ctx context.Context) ([]domain.ContactInfo, error) {
	query := `SELECT id, email, phone, address, maplink, created_at, updated_at FROM contact_infos ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []domain.ContactInfo
	for rows.Next() {
		var info domain.ContactInfo
		if err := rows.Scan(&info.ID, &info.Email, &info.Phone, &info.Address, &info.MapLink, &info.CreatedAt, &info.UpdatedAt); err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

func (r *contactRepo) UpdateInfo(ctx context.Context, info *domain.ContactInfo) error {
	query := `UPDATE contact_infos SET email = $2, phone = $3, address = $4, maplink = $5, updated_at = $6 WHERE id = $1`

	info.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		info.ID, info.Email, info.Phone, info.Address, info.MapLink, info.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contactRepo) DeleteInfo(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM contact_infos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contactRepo) CreateMessage(ctx context.Context, msg *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, subject, message, contact_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	now := time.Now()
	msg.CreatedAt = now
	msg.UpdatedAt = now
	if msg.ContactStatus == "" {
		msg.ContactStatus = domain.ContactStatusNew
	}

	return r.db.QueryRow(ctx, query,
		msg.Name, msg.Email, msg.Subject, msg.Message, msg.ContactStatus, msg.CreatedAt, msg.UpdatedAt,
	).Scan(&msg.ID)
}

func (r *contactRepo) FetchMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, contact_status, created_at, updated_at
		FROM contact_messages
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ContactMessage
	for rows.Next() {
		var msg domain.ContactMessage
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.ContactStatus, &msg.CreatedAt, &msg.UpdatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (r *contactRepo) UpdateMessageStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE contact_messages SET contact_status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contactRepo) DeleteMessage(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

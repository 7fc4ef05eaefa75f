package postgres

import (
	"time"

	"health-research-cms/internal/domain"
)

// nullableFile collects the LEFT JOINed file columns shared by content
// entities with an optional image.
type nullableFile struct {
	ID      *int64
	Name    *string
	URL     *string
	Mime    *string
	Size    *int64
	Created *time.Time
}

func (nf *nullableFile) toStoredFile() *domain.StoredFile {
	if nf.ID == nil {
		return nil
	}
	return &domain.StoredFile{
		ID:        *nf.ID,
		Name:      *nf.Name,
		URL:       *nf.URL,
		Mime:      *nf.Mime,
		Size:      *nf.Size,
		CreatedAt: *nf.Created,
	}
}

package domain

import (
	"context"
	"time"
)

// StoredFile is an uploaded artifact held in object storage. Records
// reference files by id; the URL is the public download location.
type StoredFile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Mime      string    `json:"mime"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

type FileRepository interface {
	Create(ctx context.Context, file *StoredFile) error
	GetByID(ctx context.Context, id int64) (*StoredFile, error)
	Delete(ctx context.Context, id int64) error
}

// Upload holds one incoming multipart file.
type Upload struct {
	Filename string
	Mime     string
	Data     []byte
}

type UploadUsecase interface {
	// UploadFiles validates, stores, and records each file, returning
	// the stored descriptors in input order.
	UploadFiles(ctx context.Context, uploads []Upload) ([]StoredFile, error)
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"
	"health-research-cms/pkg/logger"
	"health-research-cms/pkg/storage"

	"github.com/google/uuid"
)

// 10 MB per file, matching the frontend form limit
const maxUploadSize = 10 << 20

type uploadUsecase struct {
	fileRepo  domain.FileRepository
	fileStore *storage.FileStore
}

func NewUploadUsecase(fileRepo domain.FileRepository, fileStore *storage.FileStore) domain.UploadUsecase {
	return &uploadUsecase{
		fileRepo:  fileRepo,
		fileStore: fileStore,
	}
}

// UploadFiles validates each file, stores it in the bucket under a
// random key, and records it. All files are validated before any is
// stored so a bad file rejects the whole batch.
func (u *uploadUsecase) UploadFiles(ctx context.Context, uploads []domain.Upload) ([]domain.StoredFile, error) {
	if len(uploads) == 0 {
		return nil, apperror.BadRequest("No files provided")
	}

	for i := range uploads {
		if len(uploads[i].Data) > maxUploadSize {
			return nil, apperror.BadRequest(fmt.Sprintf("File %s exceeds the 10MB limit", uploads[i].Filename))
		}
		result := storage.ValidateFile(uploads[i].Filename, uploads[i].Data, uploads[i].Mime)
		if !result.Valid {
			return nil, apperror.BadRequest(fmt.Sprintf("File %s rejected: %s", uploads[i].Filename, result.Error))
		}
	}

	stored := make([]domain.StoredFile, 0, len(uploads))
	for i := range uploads {
		ext := strings.ToLower(filepath.Ext(uploads[i].Filename))
		key := fmt.Sprintf("uploads/%s%s", uuid.NewString(), ext)

		url, err := u.fileStore.Put(ctx, key, uploads[i].Data, uploads[i].Mime)
		if err != nil {
			return nil, apperror.Internal(err)
		}

		file := domain.StoredFile{
			Name: uploads[i].Filename,
			URL:  url,
			Mime: uploads[i].Mime,
			Size: int64(len(uploads[i].Data)),
		}
		if err := u.fileRepo.Create(ctx, &file); err != nil {
			return nil, err
		}

		logger.Log.Info("file uploaded",
			slog.Int64("file_id", file.ID),
			slog.String("name", file.Name),
			slog.Int64("size", file.Size),
		)
		stored = append(stored, file)
	}

	return stored, nil
}

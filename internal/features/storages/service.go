package storages

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"teamhub-backend/internal/util/apperrors"

	"github.com/google/uuid"
)

const downloadURLExpiry = 15 * time.Minute

type FileService struct {
	fileStorage FileStorage
	logger      *slog.Logger
}

// UploadFile stores the blob and returns its new file ID. The caller
// records the ID on a domain entity to keep the blob referenced.
func (s *FileService) UploadFile(
	ctx context.Context,
	file io.Reader,
	fileSize int64,
) (uuid.UUID, error) {
	fileID := uuid.New()

	if err := s.fileStorage.SaveFile(ctx, fileID, file, fileSize); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save file: %w", err)
	}

	s.logger.Info("file uploaded", "fileId", fileID, "size", fileSize)

	return fileID, nil
}

func (s *FileService) GetFile(ctx context.Context, fileID uuid.UUID) (io.ReadCloser, error) {
	reader, err := s.fileStorage.GetFile(ctx, fileID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeNotFound, "file not found", err)
	}

	return reader, nil
}

// StatFile verifies the blob exists, services use it to validate file
// IDs handed in by clients before persisting a reference.
func (s *FileService) StatFile(ctx context.Context, fileID uuid.UUID) error {
	if err := s.fileStorage.StatFile(ctx, fileID); err != nil {
		return apperrors.Wrap(apperrors.CodeNotFound, "file not found", err)
	}

	return nil
}

func (s *FileService) DeleteFile(ctx context.Context, fileID uuid.UUID) error {
	if err := s.fileStorage.DeleteFile(ctx, fileID); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func (s *FileService) GetDownloadURL(
	ctx context.Context,
	fileID uuid.UUID,
	fileName string,
) (string, error) {
	return s.fileStorage.GetDownloadURL(ctx, fileID, fileName, downloadURLExpiry)
}

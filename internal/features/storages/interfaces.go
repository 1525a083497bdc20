package storages

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// FileStorage abstracts the blob backend holding uploaded document
// files. Implementations: local disk and S3-compatible object storage.
type FileStorage interface {
	SaveFile(ctx context.Context, fileID uuid.UUID, file io.Reader, fileSize int64) error

	GetFile(ctx context.Context, fileID uuid.UUID) (io.ReadCloser, error)

	// StatFile reports whether the blob exists without opening it.
	StatFile(ctx context.Context, fileID uuid.UUID) error

	DeleteFile(ctx context.Context, fileID uuid.UUID) error

	// GetDownloadURL returns a time-limited URL the client can fetch
	// the blob from without further authentication.
	GetDownloadURL(
		ctx context.Context,
		fileID uuid.UUID,
		fileName string,
		expiry time.Duration,
	) (string, error)
}

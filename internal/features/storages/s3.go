package storages

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// S3FileStorage stores blobs in an S3-compatible bucket, one object per
// file ID. Download URLs are presigned by the object store itself.
type S3FileStorage struct {
	client *minio.Client
	bucket string
}

func NewS3FileStorage(client *minio.Client, bucket string) *S3FileStorage {
	return &S3FileStorage{client: client, bucket: bucket}
}

func (s *S3FileStorage) SaveFile(
	ctx context.Context,
	fileID uuid.UUID,
	file io.Reader,
	fileSize int64,
) error {
	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		fileID.String(),
		file,
		fileSize,
		minio.PutObjectOptions{},
	)
	if err != nil {
		return fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return nil
}

func (s *S3FileStorage) GetFile(
	ctx context.Context,
	fileID uuid.UUID,
) (io.ReadCloser, error) {
	object, err := s.client.GetObject(ctx, s.bucket, fileID.String(), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get file from S3: %w", err)
	}

	return object, nil
}

// StatFile issues a HEAD request, GetObject alone would not surface a
// missing object until the first read.
func (s *S3FileStorage) StatFile(ctx context.Context, fileID uuid.UUID) error {
	_, err := s.client.StatObject(ctx, s.bucket, fileID.String(), minio.StatObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to stat file in S3: %w", err)
	}

	return nil
}

func (s *S3FileStorage) DeleteFile(ctx context.Context, fileID uuid.UUID) error {
	err := s.client.RemoveObject(ctx, s.bucket, fileID.String(), minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (s *S3FileStorage) GetDownloadURL(
	ctx context.Context,
	fileID uuid.UUID,
	fileName string,
	expiry time.Duration,
) (string, error) {
	reqParams := make(url.Values)
	reqParams.Set(
		"response-content-disposition",
		fmt.Sprintf(`attachment; filename="%s"`, fileName),
	)

	presignedURL, err := s.client.PresignedGetObject(
		ctx,
		s.bucket,
		fileID.String(),
		expiry,
		reqParams,
	)
	if err != nil {
		return "", fmt.Errorf("failed to presign download URL: %w", err)
	}

	return presignedURL.String(), nil
}

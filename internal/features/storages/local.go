package storages

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"teamhub-backend/internal/config"
	files_utils "teamhub-backend/internal/util/files"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const localChunkSize = 8 * 1024 * 1024

// LocalFileStorage keeps blobs as flat files named by file ID under the
// configured data folder. Download URLs are signed with the JWT secret
// and served by the file controller.
type LocalFileStorage struct{}

func (l *LocalFileStorage) SaveFile(
	ctx context.Context,
	fileID uuid.UUID,
	file io.Reader,
	fileSize int64,
) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	err := files_utils.EnsureDirectories([]string{
		config.GetEnv().TempFolder,
		config.GetEnv().DataFolder,
	})
	if err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	tempFilePath := filepath.Join(config.GetEnv().TempFolder, fileID.String())

	tempFile, err := os.Create(tempFilePath)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		_ = tempFile.Close()
	}()

	if _, err = copyWithContext(ctx, tempFile, file); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err = tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	// Close explicitly before moving (required on Windows).
	if err = tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	finalPath := filepath.Join(config.GetEnv().DataFolder, fileID.String())

	if err = os.Rename(tempFilePath, finalPath); err != nil {
		return fmt.Errorf("failed to move file into data folder: %w", err)
	}

	return nil
}

func (l *LocalFileStorage) GetFile(
	ctx context.Context,
	fileID uuid.UUID,
) (io.ReadCloser, error) {
	filePath := filepath.Join(config.GetEnv().DataFolder, fileID.String())

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", fileID.String())
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

func (l *LocalFileStorage) StatFile(ctx context.Context, fileID uuid.UUID) error {
	filePath := filepath.Join(config.GetEnv().DataFolder, fileID.String())

	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file not found: %s", fileID.String())
	}

	return nil
}

func (l *LocalFileStorage) DeleteFile(ctx context.Context, fileID uuid.UUID) error {
	filePath := filepath.Join(config.GetEnv().DataFolder, fileID.String())

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func (l *LocalFileStorage) GetDownloadURL(
	ctx context.Context,
	fileID uuid.UUID,
	fileName string,
	expiry time.Duration,
) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"fileId": fileID.String(),
		"exp":    time.Now().UTC().Add(expiry).Unix(),
	})

	tokenString, err := token.SignedString([]byte(config.GetEnv().JwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign download token: %w", err)
	}

	downloadURL := fmt.Sprintf(
		"%s/api/v1/files/%s?token=%s&name=%s",
		config.GetEnv().PublicBaseURL,
		fileID.String(),
		tokenString,
		url.QueryEscape(fileName),
	)

	return downloadURL, nil
}

// VerifyDownloadToken checks a signed local-download token and returns
// the file ID it grants access to.
func VerifyDownloadToken(tokenString string) (uuid.UUID, error) {
	parsedToken, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.GetEnv().JwtSecret), nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid download token: %w", err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return uuid.Nil, fmt.Errorf("invalid download token")
	}

	fileIDStr, ok := claims["fileId"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("invalid download token claims")
	}

	fileID, err := uuid.Parse(fileIDStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid file ID in download token")
	}

	return fileID, nil
}

func copyWithContext(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, localChunkSize)
	var written int64

	for {
		select {
		case <-ctx.Done():
			return written, ctx.Err()
		default:
		}

		nr, readErr := src.Read(buf)
		if nr > 0 {
			nw, writeErr := dst.Write(buf[:nr])
			written += int64(nw)
			if writeErr != nil {
				return written, writeErr
			}
			if nr != nw {
				return written, io.ErrShortWrite
			}
		}

		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}

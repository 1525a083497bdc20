package storages

import (
	"teamhub-backend/internal/config"
	"teamhub-backend/internal/util/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var fileService = &FileService{
	newFileStorage(),
	logger.GetLogger(),
}

var fileController = &FileController{
	fileService,
}

func GetFileService() *FileService {
	return fileService
}

func GetFileController() *FileController {
	return fileController
}

func newFileStorage() FileStorage {
	env := config.GetEnv()

	if env.FileStorageType == config.FileStorageS3 {
		client, err := minio.New(env.S3Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(env.S3AccessKey, env.S3SecretKey, ""),
			Secure: env.S3UseSSL,
		})
		if err != nil {
			panic("failed to create S3 client: " + err.Error())
		}

		return NewS3FileStorage(client, env.S3Bucket)
	}

	return &LocalFileStorage{}
}

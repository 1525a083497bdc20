package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	env_utils "teamhub-backend/internal/util/env"
	"teamhub-backend/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

const (
	FileStorageLocal = "local"
	FileStorageS3    = "s3"
)

type EnvVariables struct {
	IsTesting   bool
	DatabaseDsn string            `env:"DATABASE_DSN" required:"true"`
	EnvMode     env_utils.EnvMode `env:"ENV_MODE"     required:"true"`
	HTTPPort    string            `env:"HTTP_PORT"    env-default:"4010"`

	// Base URL the API is reachable at; used to build download links
	// for locally stored files.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" env-default:"http://localhost:4010"`

	JwtSecret string `env:"JWT_SECRET" required:"true"`

	// File storage: "local" keeps blobs on disk, "s3" uses an
	// S3-compatible endpoint via minio-go.
	FileStorageType string `env:"FILE_STORAGE"  env-default:"local"`
	S3Endpoint      string `env:"S3_ENDPOINT"`
	S3AccessKey     string `env:"S3_ACCESS_KEY"`
	S3SecretKey     string `env:"S3_SECRET_KEY"`
	S3Bucket        string `env:"S3_BUCKET"`
	S3UseSSL        bool   `env:"S3_USE_SSL"    env-default:"false"`

	// oauth
	GitHubClientID     string `env:"GITHUB_CLIENT_ID"`
	GitHubClientSecret string `env:"GITHUB_CLIENT_SECRET"`
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`

	AuditLogRetentionDays int `env:"AUDIT_LOG_RETENTION_DAYS" env-default:"90"`

	DataFolder string
	TempFolder string
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	// Walk up from cwd until we find go.mod so tests started from any
	// package directory pick up the same .env.
	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	}

	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			break
		}
	}

	if err := cleanenv.ReadEnv(&env); err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if env.EnvMode != env_utils.EnvModeDevelopment &&
		env.EnvMode != env_utils.EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	if env.FileStorageType != FileStorageLocal && env.FileStorageType != FileStorageS3 {
		log.Error("FILE_STORAGE is invalid", "type", env.FileStorageType)
		os.Exit(1)
	}

	if env.FileStorageType == FileStorageS3 {
		if env.S3Endpoint == "" || env.S3AccessKey == "" ||
			env.S3SecretKey == "" || env.S3Bucket == "" {
			log.Error("S3 storage selected but S3_* variables are incomplete")
			os.Exit(1)
		}
	}

	env.DataFolder = filepath.Join(filepath.Dir(backendRoot), "teamhub-data", "files")
	env.TempFolder = filepath.Join(filepath.Dir(backendRoot), "teamhub-data", "temp")

	log.Info("Environment variables loaded successfully!", "mode", env.EnvMode)
}

package storage

import (
	"os"
	"sync"
	"time"

	"teamhub-backend/internal/config"
	"teamhub-backend/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	db   *gorm.DB
	once sync.Once
)

// GetDb returns the shared gorm handle. The connection is opened lazily
// so tests and CLI paths share the same initialization.
func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	log := logger.GetLogger()

	gormLogLevel := gorm_logger.Silent
	if config.GetEnv().EnvMode == "development" {
		gormLogLevel = gorm_logger.Warn
	}

	conn, err := gorm.Open(postgres.Open(config.GetEnv().DatabaseDsn), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	sqlDb, err := conn.DB()
	if err != nil {
		log.Error("Failed to get sql.DB from gorm", "error", err)
		os.Exit(1)
	}

	sqlDb.SetMaxOpenConns(25)
	sqlDb.SetMaxIdleConns(5)
	sqlDb.SetConnMaxLifetime(time.Hour)

	db = conn
}

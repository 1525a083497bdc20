package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	log  *slog.Logger
	once sync.Once
)

// GetLogger returns the process-wide slog logger. Level is controlled
// via the LOG_LEVEL env variable (debug|info|warn|error), default info.
func GetLogger() *slog.Logger {
	once.Do(func() {
		level := slog.LevelInfo

		switch os.Getenv("LOG_LEVEL") {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}

		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		}))
	})

	return log
}

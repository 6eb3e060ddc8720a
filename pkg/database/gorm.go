// Package database opens the Postgres connection shared by the API server
// and the migrate/seed commands.
package database

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool defaults sized for the API process. The back-office screens poll
// pending requests and documents, so idle connections are kept warm.
const (
	defaultMaxIdleConns = 10
	defaultMaxOpenConns = 50
	connMaxLifetime     = time.Hour
)

func gormLogger() logger.Interface {
	// Query logging stays on in development only; statements carry trader
	// CPF and PIX data, so production logs parameterized warnings.
	level := logger.Info
	if os.Getenv("GO_ENV") == "production" {
		level = logger.Warn
	}
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)
}

func intEnv(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func configurePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(intEnv("DB_MAX_IDLE_CONNS", defaultMaxIdleConns))
	sqlDB.SetMaxOpenConns(intEnv("DB_MAX_OPEN_CONNS", defaultMaxOpenConns))
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	return nil
}

// NewGormDBFromDSN opens a pooled GORM connection from a Postgres DSN.
func NewGormDBFromDSN(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger(),
	})
	if err != nil {
		return nil, err
	}

	if err := configurePool(db); err != nil {
		return nil, err
	}
	return db, nil
}

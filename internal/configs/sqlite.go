package config

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/logging"
	model "task-tracker.com/task-tracker/internal/models"
)

// NewDatabaseClient opens the sqlite file at dsn, creating it if needed, and
// makes sure the tasks table exists. Safe to call on every start.
func NewDatabaseClient(dsn string, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logging.Gorm(log),
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, "open database", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, "open database", err)
	}
	// one connection for the whole process
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.Task{}); err != nil {
		_ = sqlDB.Close()
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, "create schema", err)
	}

	log.WithField("dsn", dsn).Debug("database ready")
	return db, nil
}

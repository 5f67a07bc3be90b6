package storage

import (
	"fmt"
	"path/filepath"

	"github.com/10Draken01/Docker-Front/internal/log"
	"github.com/10Draken01/Docker-Front/internal/model"
)

// Storage represents the main storage implementation.
type Storage struct {
	db Database
	UserStore
}

// NewStorage opens the sqlite database named by config and initializes the schema.
func NewStorage(config *model.Config, logger *log.Logger) (*Storage, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	db, err := NewDatabase(SQLite, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database instance: %w", err)
	}

	dataSourceName := filepath.Join(config.DatabaseDir, config.DatabaseFile)
	if err := db.Open(dataSourceName); err != nil {
		return nil, fmt.Errorf("failed to open database connection '%s': %w", dataSourceName, err)
	}

	storage := &Storage{db: db}
	if err := storage.db.InitSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	storage.UserStore = NewUserStorage(storage)

	return storage, nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// GetDatabase returns the database instance
func (s *Storage) GetDatabase() Database {
	return s.db
}

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/anything-list/internal/config"
	"github.com/MKhiriev/anything-list/internal/logger"
)

// Storages groups everything the services persist to.
type Storages struct {
	DB       *DB
	Dataset  DatasetStore
	Settings *SettingsStore
}

// NewStorages connects to the dataset database, migrates it and opens the
// settings file.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate dataset store: %w", err)
	}

	settings, err := NewSettingsStore(cfg.SettingsPath, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		DB:       db,
		Dataset:  NewDatasetRepository(db),
		Settings: settings,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

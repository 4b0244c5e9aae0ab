package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shelfsync/internal/config"
	"github.com/MKhiriev/shelfsync/internal/logger"
)

// Storages groups all local repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	// Records is the single-writer repository for items and categories.
	Records RecordRepository

	// Queue is the durable outbound sync queue.
	Queue QueueRepository

	// Activity is the prunable local activity log.
	Activity ActivityRepository

	// Notifications is the prunable notification queue.
	Notifications NotificationRepository

	// DrainLock is the durable drain lease.
	DrainLock DrainLockRepository

	// DB is the shared SQLite handle; exposed for the storage optimizer's
	// size metrics.
	DB *DB
}

// NewStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Records:       NewRecordRepository(db, logger),
		Queue:         NewQueueRepository(db, logger),
		Activity:      NewActivityRepository(db, logger),
		Notifications: NewNotificationRepository(db, logger),
		DrainLock:     NewDrainLockRepository(db, logger),
		DB:            db,
	}, nil
}

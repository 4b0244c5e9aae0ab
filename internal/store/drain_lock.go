package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/shelfsync/internal/logger"
)

// drainLockRepository is the SQLite-backed implementation of
// [DrainLockRepository]. The lease is a single durable row, so "is a drain
// running" survives process crashes: a lease older than the TTL is presumed
// orphaned and may be taken over.
type drainLockRepository struct {
	*DB
	logger *logger.Logger
}

// NewDrainLockRepository constructs a [DrainLockRepository] backed by the
// provided database connection and logger.
func NewDrainLockRepository(db *DB, logger *logger.Logger) DrainLockRepository {
	return &drainLockRepository{DB: db, logger: logger}
}

func (d *drainLockRepository) Acquire(ctx context.Context, holder string, ttl time.Duration) error {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	res, err := d.DB.ExecContext(ctx, acquireDrainLock, holder, now, now.Add(-ttl))
	if err != nil {
		log.Err(err).
			Str("func", "drainLockRepository.Acquire").
			Str("holder", holder).
			Msg("failed to acquire drain lock")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrDrainLockHeld
	}

	return nil
}

func (d *drainLockRepository) Release(ctx context.Context, holder string) error {
	log := logger.FromContext(ctx)

	_, err := d.DB.ExecContext(ctx, releaseDrainLock, holder)
	if err != nil {
		log.Err(err).
			Str("func", "drainLockRepository.Release").
			Str("holder", holder).
			Msg("failed to release drain lock")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

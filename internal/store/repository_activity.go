// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/models"
)

const (
	sizeActivityOlderThan = `
		SELECT COALESCE(SUM(LENGTH(action) + LENGTH(COALESCE(detail, '')) + 64), 0)
		FROM activity_log
		WHERE created_at < ?;`

	sizeNotificationsOlderThan = `
		SELECT COALESCE(SUM(LENGTH(title) + LENGTH(COALESCE(body, '')) + 64), 0)
		FROM notifications
		WHERE created_at < ?;`

	oldestActivityEntry = `
		SELECT MIN(created_at) FROM activity_log;`

	oldestNotification = `
		SELECT MIN(created_at) FROM notifications;`
)

// activityRepository is the SQLite-backed implementation of
// [ActivityRepository]. The activity log is append-only history: it is never
// consulted by the sync engine itself and exists so the optimizer has
// something safe to prune.
type activityRepository struct {
	*DB
	logger *logger.Logger
}

// NewActivityRepository constructs an [ActivityRepository] backed by the
// provided database connection and logger.
func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	return &activityRepository{DB: db, logger: logger}
}

func (a *activityRepository) Append(ctx context.Context, entry models.ActivityEntry) error {
	log := logger.FromContext(ctx)

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := a.DB.ExecContext(ctx, insertActivityEntry,
		nullableString(string(entry.EntityType)),
		nullableString(entry.EntityID),
		entry.Action,
		nullableString(entry.Detail),
		createdAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "activityRepository.Append").
			Str("action", entry.Action).
			Msg("failed to append activity entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (a *activityRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return purgeOlderThan(ctx, a.DB, "activity_log", sizeActivityOlderThan, cutoff)
}

func (a *activityRepository) OldestCreatedAt(ctx context.Context) (*time.Time, error) {
	return oldestCreatedAt(ctx, a.DB, oldestActivityEntry)
}

// notificationRepository is the SQLite-backed implementation of
// [NotificationRepository].
type notificationRepository struct {
	*DB
	logger *logger.Logger
}

// NewNotificationRepository constructs a [NotificationRepository] backed by
// the provided database connection and logger.
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	return &notificationRepository{DB: db, logger: logger}
}

func (n *notificationRepository) Append(ctx context.Context, entry models.NotificationEntry) error {
	log := logger.FromContext(ctx)

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := n.DB.ExecContext(ctx, insertNotification,
		entry.Title,
		nullableString(entry.Body),
		entry.Read,
		createdAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.Append").
			Str("title", entry.Title).
			Msg("failed to append notification")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (n *notificationRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return purgeOlderThan(ctx, n.DB, "notifications", sizeNotificationsOlderThan, cutoff)
}

func (n *notificationRepository) OldestCreatedAt(ctx context.Context) (*time.Time, error) {
	return oldestCreatedAt(ctx, n.DB, oldestNotification)
}

// ── shared helpers ───────────────────────────────────────────────────────────

// purgeOlderThan measures the approximate size of the rows it is about to
// drop, then deletes them in the same transaction, returning the estimate.
func purgeOlderThan(ctx context.Context, db *DB, table, sizeQuery string, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	var freed int64
	err := db.inTx(ctx, func(tx *sql.Tx) error {
		if scanErr := tx.QueryRowContext(ctx, sizeQuery, cutoff).Scan(&freed); scanErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		query, args, buildErr := buildPurgeOlderThan(table, cutoff)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "purgeOlderThan").
			Str("table", table).
			Time("cutoff", cutoff).
			Msg("failed to purge old entries")
		return 0, err
	}

	return freed, nil
}

func oldestCreatedAt(ctx context.Context, db *DB, query string) (*time.Time, error) {
	var oldest sql.NullTime
	if err := db.QueryRowContext(ctx, query).Scan(&oldest); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if !oldest.Valid {
		return nil, nil
	}
	return &oldest.Time, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

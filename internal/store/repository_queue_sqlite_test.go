// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/migrations"
	"github.com/MKhiriev/shelfsync/models"
)

// newSQLiteQueue opens a throwaway SQLite database with the real schema so
// the due-entry selection can be exercised against actual rows instead of a
// scripted driver.
func newSQLiteQueue(t *testing.T) (*DB, QueueRepository) {
	t.Helper()

	conn, err := sql.Open("sqlite3", "file:"+t.TempDir()+"/queue.db?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetMaxOpenConns(1)

	require.NoError(t, migrations.Migrate(conn))

	db := &DB{DB: conn, logger: logger.Nop()}
	return db, NewQueueRepository(db, logger.Nop())
}

func insertQueueRow(t *testing.T, db *DB, entityID, operationID string, status models.EntryStatus, nextAttempt time.Time) int64 {
	t.Helper()

	res, err := db.ExecContext(context.Background(), insertQueueEntry,
		models.EntityItem, entityID, models.OpUpdate, `{"quantity":1}`,
		0, operationID, 0, status, nextAttempt, nextAttempt)
	require.NoError(t, err)

	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

// An entity whose oldest queue entry cannot be sent yet must not have any
// of its later entries picked up, or a later edit would reach the server
// before an earlier one and push with a stale base version.
func TestQueueRepository_Due_LaterEntriesNeverOvertakeHeldHead(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	past := now.Add(-time.Minute)

	t.Run("head waiting out its backoff", func(t *testing.T) {
		db, repo := newSQLiteQueue(t)

		insertQueueRow(t, db, "item-a", "op-1", models.EntryPending, now.Add(time.Hour))
		insertQueueRow(t, db, "item-a", "op-2", models.EntryPending, past)
		other := insertQueueRow(t, db, "item-b", "op-3", models.EntryPending, past)

		due, err := repo.Due(context.Background(), now)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, other, due[0].ID)
	})

	t.Run("head held as conflicted", func(t *testing.T) {
		db, repo := newSQLiteQueue(t)

		insertQueueRow(t, db, "item-a", "op-1", models.EntryConflicted, past)
		insertQueueRow(t, db, "item-a", "op-2", models.EntryPending, past)

		due, err := repo.Due(context.Background(), now)
		require.NoError(t, err)
		assert.Empty(t, due)
	})

	t.Run("head in flight", func(t *testing.T) {
		db, repo := newSQLiteQueue(t)

		insertQueueRow(t, db, "item-a", "op-1", models.EntryInFlight, past)
		insertQueueRow(t, db, "item-a", "op-2", models.EntryPending, past)

		due, err := repo.Due(context.Background(), now)
		require.NoError(t, err)
		assert.Empty(t, due)
	})

	t.Run("sendable siblings drain together in enqueue order", func(t *testing.T) {
		db, repo := newSQLiteQueue(t)

		first := insertQueueRow(t, db, "item-a", "op-1", models.EntryPending, past)
		second := insertQueueRow(t, db, "item-a", "op-2", models.EntryPending, past)

		due, err := repo.Due(context.Background(), now)
		require.NoError(t, err)
		require.Len(t, due, 2)
		assert.Equal(t, first, due[0].ID)
		assert.Equal(t, second, due[1].ID)
	})

	t.Run("held entry becomes due once its head is confirmed", func(t *testing.T) {
		db, repo := newSQLiteQueue(t)

		head := insertQueueRow(t, db, "item-a", "op-1", models.EntryPending, now.Add(time.Hour))
		follower := insertQueueRow(t, db, "item-a", "op-2", models.EntryPending, past)

		require.NoError(t, repo.Remove(context.Background(), head))

		due, err := repo.Due(context.Background(), now)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, follower, due[0].ID)
	})
}

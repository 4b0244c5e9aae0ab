package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shelfsync/internal/logger"
)

func TestDrainLockRepository_Acquire(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewDrainLockRepository(db, logger.Nop())

	t.Run("takes a free lease", func(t *testing.T) {
		dbMock.ExpectExec(regexp.QuoteMeta(acquireDrainLock)).
			WithArgs("holder-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.Acquire(context.Background(), "holder-1", 2*time.Minute))
	})

	t.Run("live lease belongs to someone else", func(t *testing.T) {
		dbMock.ExpectExec(regexp.QuoteMeta(acquireDrainLock)).
			WithArgs("holder-2", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, repo.Acquire(context.Background(), "holder-2", 2*time.Minute), ErrDrainLockHeld)
	})

	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestDrainLockRepository_Release(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewDrainLockRepository(db, logger.Nop())

	dbMock.ExpectExec(regexp.QuoteMeta(releaseDrainLock)).
		WithArgs("holder-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Release(context.Background(), "holder-1"))
	require.NoError(t, dbMock.ExpectationsWereMet())
}

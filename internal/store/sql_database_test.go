package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_SizeBytes(t *testing.T) {
	db, dbMock := newMockDB(t)

	dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size();`)).
		WillReturnRows(sqlmock.NewRows([]string{"size"}).AddRow(int64(65536)))

	size, err := db.SizeBytes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(65536), size)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestDB_InTx_RollsBackOnError(t *testing.T) {
	db, dbMock := newMockDB(t)

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()

	boom := errors.New("boom")
	err := db.inTx(context.Background(), func(*sql.Tx) error { return boom })
	require.ErrorIs(t, err, boom)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestPinSave(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO pins`).
		WithArgs("user-1", "somehash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	writer := NewPinWriterRepository(db, nil)
	err := writer.Save(context.Background(), "user-1", "somehash")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPinRecordFailure(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`UPDATE pins SET failed_attempts = failed_attempts \+ 1`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"failed_attempts"}).AddRow(3))

	writer := NewPinWriterRepository(db, nil)
	attempts, err := writer.RecordFailure(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPinLockAndReset(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	until := time.Now().Add(30 * time.Minute)

	mock.ExpectExec(`UPDATE pins SET locked_until`).
		WithArgs("user-1", until).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE pins SET failed_attempts = 0`).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	writer := NewPinWriterRepository(db, nil)
	assert.NoError(t, writer.Lock(context.Background(), "user-1", until))
	assert.NoError(t, writer.ResetFailures(context.Background(), "user-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPinFailureWritesBypassRequestTx(t *testing.T) {
	pool, poolMock, cleanupPool := newMockDB(t)
	defer cleanupPool()
	txDB, txMock, cleanupTx := newMockDB(t)
	defer cleanupTx()

	// The failure counter and the lockout must land on the pool even when the
	// context carries a request transaction, because a wrong PIN ends the
	// request with a 401 and a rollback.
	txMock.ExpectBegin()
	tx, err := txDB.Beginx()
	assert.NoError(t, err)
	txGetter := func(context.Context) *sqlx.Tx { return tx }

	until := time.Now().Add(30 * time.Minute)
	poolMock.ExpectQuery(`UPDATE pins SET failed_attempts = failed_attempts \+ 1`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"failed_attempts"}).AddRow(3))
	poolMock.ExpectExec(`UPDATE pins SET locked_until`).
		WithArgs("user-1", until).
		WillReturnResult(sqlmock.NewResult(0, 1))

	writer := NewPinWriterRepository(pool, txGetter)
	attempts, err := writer.RecordFailure(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.NoError(t, writer.Lock(context.Background(), "user-1", until))

	assert.NoError(t, poolMock.ExpectationsWereMet())
	assert.NoError(t, txMock.ExpectationsWereMet())
}

func TestPinGetByUserID_NotFound(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM pins`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	reader := NewPinReaderRepository(db)
	record, err := reader.GetByUserID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, record)
	assert.NoError(t, mock.ExpectationsWereMet())
}

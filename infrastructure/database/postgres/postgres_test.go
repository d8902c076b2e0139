package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Connection{DB: db}, mock
}

func TestRunInTransactionCommit(t *testing.T) {
	conn, mock := newTestConnection(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO dashboard_metrics").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.Exec("INSERT INTO dashboard_metrics (id) VALUES ($1)", "abc123")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransactionRollbackOnError(t *testing.T) {
	conn, mock := newTestConnection(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	// O erro original deve ser resinalizado após o rollback
	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransactionRollbackOnPanic(t *testing.T) {
	conn, mock := newTestConnection(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			panic("falha inesperada durante a transação")
		})
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransactionBeginError(t *testing.T) {
	conn, mock := newTestConnection(t)

	mock.ExpectBegin().WillReturnError(assert.AnError)

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		t.Fatal("a função não pode ser chamada quando a transação não abre")
		return nil
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

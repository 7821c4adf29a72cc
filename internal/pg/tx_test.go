package pg

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        func(conn *Conn) TransactionalFn
		expectErr bool
	}{
		{
			name: "Commits when fn succeeds",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE bounties SET status = $1 WHERE id = $2`)).
					WithArgs("cancelled", int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			fn: func(conn *Conn) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := conn.Exec(ctx, `UPDATE bounties SET status = $1 WHERE id = $2`, "cancelled", int64(1))
					return err
				}
			},
		},
		{
			name: "Rolls back when fn fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(conn *Conn) TransactionalFn {
				return func(ctx context.Context) error {
					return errors.New("boom")
				}
			},
			expectErr: true,
		},
		{
			name: "Begin error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			fn: func(conn *Conn) TransactionalFn {
				return func(ctx context.Context) error {
					t.Fatal("fn must not run without a transaction")
					return nil
				}
			},
			expectErr: true,
		},
		{
			name: "Commit error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
				mock.ExpectRollback()
			},
			fn: func(conn *Conn) TransactionalFn {
				return func(ctx context.Context) error { return nil }
			},
			expectErr: true,
		},
		{
			name: "Nested Begin joins the open transaction",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			fn: func(conn *Conn) TransactionalFn {
				return func(ctx context.Context) error {
					_, ok := txFromContext(ctx)
					assert.True(t, ok)
					return nil
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)
			manager := NewTXManager(mock)
			conn := New(mock)

			err = manager.Begin(context.Background(), func(ctx context.Context) error {
				return manager.Begin(ctx, tt.fn(conn))
			})

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConn_UsesPoolOutsideTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT balance FROM profiles WHERE id = $1`)).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(100)))

	var balance int64
	err = New(mock).QueryRow(context.Background(), `SELECT balance FROM profiles WHERE id = $1`, "u1").Scan(&balance)

	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasCode(t *testing.T) {
	assert.False(t, HasCode(errors.New("plain"), CodeUniqueViolation))
	assert.True(t, HasCode(fmt.Errorf("place bounty: %w", &pgconn.PgError{Code: "GM001"}), CodeInsufficientBalance))
	assert.False(t, HasCode(&pgconn.PgError{Code: "GM002"}, CodeInsufficientBalance))
}

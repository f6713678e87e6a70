package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*TxManager, *DB, pgxmock.PgxPoolIface) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)

	return NewTXManager(mockPool), New(mockPool), mockPool
}

const touchQuery = `UPDATE orders SET updated_at = NOW() WHERE id = $1`

func TestTxManager_Begin(t *testing.T) {
	tests := []struct {
		name       string
		mockSetup  func(mock pgxmock.PgxPoolIface)
		fnErr      error
		expectErr  bool
		expectHook bool
	}{
		{
			name: "Commit runs hooks",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(touchQuery)).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			expectErr:  false,
			expectHook: true,
		},
		{
			name: "Body error rolls back",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(touchQuery)).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectRollback()
			},
			fnErr:      errors.New("forbidden"),
			expectErr:  true,
			expectHook: false,
		},
		{
			name: "Begin error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			expectErr:  true,
			expectHook: false,
		},
		{
			name: "Commit error drops hooks",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(touchQuery)).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
				mock.ExpectRollback()
			},
			expectErr:  true,
			expectHook: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txManager, db, mock := NewMock(t)
			tt.mockSetup(mock)

			hookRan := false
			err := txManager.Begin(context.Background(), func(ctx context.Context) error {
				if _, err := db.Exec(ctx, touchQuery, 1); err != nil {
					return err
				}
				AfterCommit(ctx, func() { hookRan = true })
				return tt.fnErr
			})

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectHook, hookRan)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxManager_BeginNested(t *testing.T) {
	txManager, db, mock := NewMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(touchQuery)).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(touchQuery)).
		WithArgs(2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	var order []string
	err := txManager.Begin(context.Background(), func(ctx context.Context) error {
		if _, err := db.Exec(ctx, touchQuery, 1); err != nil {
			return err
		}
		AfterCommit(ctx, func() { order = append(order, "outer") })
		return txManager.Begin(ctx, func(ctx context.Context) error {
			AfterCommit(ctx, func() { order = append(order, "inner") })
			_, err := db.Exec(ctx, touchQuery, 2)
			return err
		})
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAfterCommit_NoTransaction(t *testing.T) {
	ran := false
	AfterCommit(context.Background(), func() { ran = true })
	assert.True(t, ran)
}

func TestTxManager_BeginPanic(t *testing.T) {
	txManager, _, mock := NewMock(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = txManager.Begin(context.Background(), func(ctx context.Context) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

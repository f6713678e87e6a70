package notificationrepo

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var notificationCols = []string{"id", "user_id", "type", "message", "data", "read", "created_at"}

var payload = json.RawMessage(`{"orderId":7,"serviceId":10}`)

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`INSERT INTO notifications (user_id, type, message, data) VALUES ($1, $2, $3, $4) RETURNING id, read, created_at`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Notification saved",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2, "order_created", "New order", payload).
					WillReturnRows(pgxmock.NewRows([]string{"id", "read", "created_at"}).AddRow(11, false, now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2, "order_created", "New order", payload).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			n, err := repo.Create(context.Background(), &domain.Notification{
				UserID: 2, Type: domain.NotificationOrderCreated, Message: "New order", Data: payload,
			})
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, n)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 11, n.ID)
			assert.False(t, n.Read)
			assert.Equal(t, now, n.CreatedAt)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`FROM notifications WHERE id = $1`)

	mock.ExpectQuery(query).WithArgs(11).
		WillReturnRows(pgxmock.NewRows(notificationCols).AddRow(11, 2, "order_created", "New order", payload, false, now))
	mock.ExpectQuery(query).WithArgs(12).WillReturnError(pgx.ErrNoRows)

	n, err := repo.FindByID(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, &domain.Notification{
		ID: 11, UserID: 2, Type: "order_created", Message: "New order", Data: payload, CreatedAt: now,
	}, n)

	n, err = repo.FindByID(context.Background(), 12)
	assert.NoError(t, err)
	assert.Nil(t, n)
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`FROM notifications WHERE user_id = $1 ORDER BY created_at DESC, id DESC`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Notifications found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2).
					WillReturnRows(pgxmock.NewRows(notificationCols).
						AddRow(12, 2, "order_cancelled", "Order cancelled", payload, false, now).
						AddRow(11, 2, "order_created", "New order", payload, true, now))
			},
			count: 2,
		},
		{
			name: "Empty",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2).WillReturnRows(pgxmock.NewRows(notificationCols))
			},
			count: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListByUser(context.Background(), 2)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, result)
			assert.Len(t, result, tt.count)
		})
	}
}

func TestRepository_MarkRead(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`UPDATE notifications SET read = TRUE WHERE id = $1`)

	mock.ExpectQuery(query).WithArgs(11).
		WillReturnRows(pgxmock.NewRows(notificationCols).AddRow(11, 2, "order_created", "New order", payload, true, now))
	mock.ExpectQuery(query).WithArgs(12).WillReturnError(pgx.ErrNoRows)

	n, err := repo.MarkRead(context.Background(), 11)
	require.NoError(t, err)
	assert.True(t, n.Read)

	_, err = repo.MarkRead(context.Background(), 12)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_MarkAllRead(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`)

	mock.ExpectExec(query).WithArgs(2).WillReturnResult(pgxmock.NewResult("UPDATE", 3))
	mock.ExpectExec(query).WithArgs(2).WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	updated, err := repo.MarkAllRead(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)

	updated, err = repo.MarkAllRead(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)
}

package messagerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByOrderID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`SELECT id, order_id, user_id, content, created_at FROM messages WHERE order_id = $1 ORDER BY created_at ASC`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Message
	}{
		{
			name: "Messages found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(7).
					WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "user_id", "content", "created_at"}).
						AddRow(1, 7, 1, "hi", now).
						AddRow(2, 7, 2, "hello", now))
			},
			result: []domain.Message{
				{ID: 1, OrderID: 7, UserID: 1, Content: "hi", CreatedAt: now},
				{ID: 2, OrderID: 7, UserID: 2, Content: "hello", CreatedAt: now},
			},
		},
		{
			name: "No messages",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(7).
					WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "user_id", "content", "created_at"}))
			},
			result: []domain.Message{},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(7).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByOrderID(context.Background(), 7)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

package notificationservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/realtime"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockPresence, *MockScheduler) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	presence := NewMockPresence(ctrl)
	scheduler := NewMockScheduler(ctrl)
	service := New(repo, presence, scheduler)
	defer ctrl.Finish()
	return service, repo, presence, scheduler
}

// runNow makes the scheduler execute tasks synchronously.
func runNow(scheduler *MockScheduler) {
	scheduler.EXPECT().TryAddTask(gomock.Any()).DoAndReturn(func(task func() error) error {
		_ = task()
		return nil
	})
}

func TestNotify(t *testing.T) {
	service, repo, presence, scheduler := NewMock(t)
	stored := &domain.Notification{ID: 4, UserID: 2, Type: domain.NotificationOrderCreated, Message: "New order received for Logo design"}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Stored and pushed",
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
					assert.JSONEq(t, `{"orderId":10,"serviceId":5,"packageId":6}`, string(n.Data))
					return stored, nil
				})
				runNow(scheduler)
				presence.EXPECT().Publish(gomock.Any(), 2, stored).Return(nil)
			},
		},
		{
			name: "Push failure is not an error",
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(stored, nil)
				runNow(scheduler)
				presence.EXPECT().Publish(gomock.Any(), 2, stored).Return(errors.New("broken pipe"))
			},
		},
		{
			name: "Full push queue is not an error",
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(stored, nil)
				scheduler.EXPECT().TryAddTask(gomock.Any()).Return(realtime.ErrQueueFull)
			},
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			n, err := service.Notify(context.Background(), 2, domain.NotificationOrderCreated, "New order received for Logo design",
				domain.OrderPayload{OrderID: 10, ServiceID: 5, PackageID: 6})
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, n)
			} else {
				require.NoError(t, err)
				assert.Equal(t, stored, n)
			}
		})
	}
}

func TestNotifyNilPayload(t *testing.T) {
	service, repo, presence, scheduler := NewMock(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
		assert.Equal(t, json.RawMessage(`{}`), n.Data)
		return n, nil
	})
	runNow(scheduler)
	presence.EXPECT().Publish(gomock.Any(), 2, gomock.Any()).Return(nil)

	_, err := service.Notify(context.Background(), 2, domain.NotificationOrderUpdated, "hello", nil)
	assert.NoError(t, err)
}

func TestNotifyPushWaitsForCommit(t *testing.T) {
	service, repo, presence, scheduler := NewMock(t)
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()
	txManager := pg.NewTXManager(pool)

	t.Run("Commit releases the push", func(t *testing.T) {
		pool.ExpectBegin()
		pool.ExpectCommit()

		stored := &domain.Notification{ID: 7, UserID: 2}
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(stored, nil)
		scheduler.EXPECT().TryAddTask(gomock.Any()).DoAndReturn(func(task func() error) error {
			assert.NoError(t, pool.ExpectationsWereMet(), "push scheduled before commit")
			return task()
		})
		presence.EXPECT().Publish(gomock.Any(), 2, stored).Return(nil)

		err := txManager.Begin(context.Background(), func(ctx context.Context) error {
			_, err := service.Notify(ctx, 2, domain.NotificationOrderUpdated, "msg", nil)
			return err
		})
		require.NoError(t, err)
	})

	t.Run("Rollback drops the push", func(t *testing.T) {
		pool.ExpectBegin()
		pool.ExpectRollback()

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Notification{ID: 8, UserID: 2}, nil)

		err := txManager.Begin(context.Background(), func(ctx context.Context) error {
			if _, err := service.Notify(ctx, 2, domain.NotificationOrderUpdated, "msg", nil); err != nil {
				return err
			}
			return errors.New("later step failed")
		})
		assert.EqualError(t, err, "later step failed")
	})

	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestNotifyDoesNotWaitForBusyPushers(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	presence := NewMockPresence(ctrl)
	pushers := realtime.NewWorkerPool(1, 1)
	service := New(repo, presence, pushers)

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, pushers.TryAddTask(func() error {
		close(started)
		<-release
		return nil
	}))
	<-started
	require.NoError(t, pushers.TryAddTask(func() error { return nil }))

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Notification{ID: 9, UserID: 2}, nil)

	done := make(chan error, 1)
	go func() {
		_, err := service.Notify(context.Background(), 2, domain.NotificationOrderUpdated, "msg", nil)
		done <- err
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("notify blocked on a saturated push queue")
	}

	close(release)
	pushers.Close()
}

func TestMarkRead(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	owner := domain.Principal{UserID: 2}

	tests := []struct {
		name          string
		caller        domain.Principal
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Owner marks read",
			caller: owner,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 4).Return(&domain.Notification{ID: 4, UserID: 2}, nil)
				repo.EXPECT().MarkRead(gomock.Any(), 4).Return(&domain.Notification{ID: 4, UserID: 2, Read: true}, nil)
			},
		},
		{
			name:   "Already read",
			caller: owner,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 4).Return(&domain.Notification{ID: 4, UserID: 2, Read: true}, nil)
			},
		},
		{
			name:   "Someone else's notification",
			caller: domain.Principal{UserID: 3},
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 4).Return(&domain.Notification{ID: 4, UserID: 2}, nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:   "Missing notification",
			caller: owner,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 4).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			n, err := service.MarkRead(context.Background(), tt.caller, 4)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, n)
			} else {
				require.NoError(t, err)
				assert.True(t, n.Read)
			}
		})
	}
}

func TestMarkAllRead(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	caller := domain.Principal{UserID: 2}

	repo.EXPECT().MarkAllRead(gomock.Any(), 2).Return(int64(3), nil)
	repo.EXPECT().MarkAllRead(gomock.Any(), 2).Return(int64(0), nil)

	first, err := service.MarkAllRead(context.Background(), caller)
	require.NoError(t, err)
	assert.Equal(t, int64(3), first)

	second, err := service.MarkAllRead(context.Background(), caller)
	require.NoError(t, err)
	assert.Equal(t, int64(0), second)
}

func TestList(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	repo.EXPECT().ListByUser(gomock.Any(), 2).Return(nil, nil)
	list, err := service.List(context.Background(), domain.Principal{UserID: 2})

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

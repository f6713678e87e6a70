package reviewservice

import (
	"context"
	"errors"
	"testing"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	repo    *MockRepo
	orders  *MockOrderReader
	catalog *MockCatalog
	ratings *MockRatingAggregator
	tx      *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:    NewMockRepo(ctrl),
		orders:  NewMockOrderReader(ctrl),
		catalog: NewMockCatalog(ctrl),
		ratings: NewMockRatingAggregator(ctrl),
		tx:      pg.NewMockTXManager(ctrl),
	}
	service := New(m.repo, m.orders, m.catalog, m.ratings, m.tx)
	defer ctrl.Finish()
	return service, m
}

func inTx(tx *pg.MockTXManager) {
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

var buyer = domain.Principal{UserID: 1, Role: domain.RoleBuyer}

func order(status, payment string) *domain.Order {
	return &domain.Order{ID: 10, BuyerID: 1, ServiceID: 5, Status: status, PaymentStatus: payment}
}

func expectRefresh(m *mocks) {
	m.catalog.EXPECT().FindServiceByID(gomock.Any(), 5).Return(&domain.Service{ID: 5, UserID: 2}, nil)
	m.ratings.EXPECT().RecomputeSellerRating(gomock.Any(), 2).Return(domain.RatingSummary{AverageRating: 5, TotalReviews: 1}, nil)
}

func TestCreate(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		review        *domain.Review
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Review of completed paid order",
			review: &domain.Review{ServiceID: 5, OrderID: 10, Rating: 5, Comment: "great"},
			prepareMock: func() {
				inTx(m.tx)
				m.orders.EXPECT().FindByID(gomock.Any(), 10).Return(order(domain.OrderStatusCompleted, domain.PaymentStatusPaid), nil)
				m.repo.EXPECT().FindByUserAndOrder(gomock.Any(), 1, 10).Return(nil, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, r *domain.Review) (*domain.Review, error) {
					assert.Equal(t, 1, r.UserID)
					r.ID = 3
					return r, nil
				})
				expectRefresh(m)
			},
		},
		{
			name:          "Rating out of range",
			review:        &domain.Review{ServiceID: 5, OrderID: 10, Rating: 6},
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Missing order",
			review:        &domain.Review{ServiceID: 5, Rating: 4},
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Order not completed",
			review: &domain.Review{ServiceID: 5, OrderID: 10, Rating: 4},
			prepareMock: func() {
				inTx(m.tx)
				m.orders.EXPECT().FindByID(gomock.Any(), 10).Return(order(domain.OrderStatusInProgress, domain.PaymentStatusPaid), nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:   "Order not paid",
			review: &domain.Review{ServiceID: 5, OrderID: 10, Rating: 4},
			prepareMock: func() {
				inTx(m.tx)
				m.orders.EXPECT().FindByID(gomock.Any(), 10).Return(order(domain.OrderStatusCompleted, domain.PaymentStatusPending), nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:   "Order for another service",
			review: &domain.Review{ServiceID: 8, OrderID: 10, Rating: 4},
			prepareMock: func() {
				inTx(m.tx)
				m.orders.EXPECT().FindByID(gomock.Any(), 10).Return(order(domain.OrderStatusCompleted, domain.PaymentStatusPaid), nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:   "Second review of the same order",
			review: &domain.Review{ServiceID: 5, OrderID: 10, Rating: 4},
			prepareMock: func() {
				inTx(m.tx)
				m.orders.EXPECT().FindByID(gomock.Any(), 10).Return(order(domain.OrderStatusCompleted, domain.PaymentStatusPaid), nil)
				m.repo.EXPECT().FindByUserAndOrder(gomock.Any(), 1, 10).Return(&domain.Review{ID: 3}, nil)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Rating refresh failure",
			review: &domain.Review{ServiceID: 5, OrderID: 10, Rating: 4},
			prepareMock: func() {
				inTx(m.tx)
				m.orders.EXPECT().FindByID(gomock.Any(), 10).Return(order(domain.OrderStatusCompleted, domain.PaymentStatusPaid), nil)
				m.repo.EXPECT().FindByUserAndOrder(gomock.Any(), 1, 10).Return(nil, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Review{ID: 3}, nil)
				m.catalog.EXPECT().FindServiceByID(gomock.Any(), 5).Return(&domain.Service{ID: 5, UserID: 2}, nil)
				m.ratings.EXPECT().RecomputeSellerRating(gomock.Any(), 2).Return(domain.RatingSummary{}, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			review, err := service.Create(context.Background(), buyer, tt.review)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, review)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 3, review.ID)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		rating        int
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Owner changes rating",
			rating: 3,
			prepareMock: func() {
				inTx(m.tx)
				m.repo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Review{ID: 3, UserID: 1, ServiceID: 5, Rating: 5}, nil)
				m.repo.EXPECT().Update(gomock.Any(), &domain.Review{ID: 3, UserID: 1, ServiceID: 5, Rating: 3, Comment: "ok"}).
					Return(&domain.Review{ID: 3, UserID: 1, ServiceID: 5, Rating: 3, Comment: "ok"}, nil)
				expectRefresh(m)
			},
		},
		{
			name:          "Invalid rating",
			rating:        0,
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Someone else's review",
			rating: 3,
			prepareMock: func() {
				inTx(m.tx)
				m.repo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Review{ID: 3, UserID: 9, ServiceID: 5}, nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:   "Review missing",
			rating: 3,
			prepareMock: func() {
				inTx(m.tx)
				m.repo.EXPECT().FindByID(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			review, err := service.Update(context.Background(), buyer, 3, tt.rating, "ok")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 3, review.Rating)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Owner deletes and rating is refreshed", func(t *testing.T) {
		inTx(m.tx)
		m.repo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Review{ID: 3, UserID: 1, ServiceID: 5}, nil)
		m.repo.EXPECT().Delete(gomock.Any(), 3).Return(nil)
		expectRefresh(m)

		assert.NoError(t, service.Delete(context.Background(), buyer, 3))
	})

	t.Run("Someone else's review", func(t *testing.T) {
		inTx(m.tx)
		m.repo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Review{ID: 3, UserID: 9, ServiceID: 5}, nil)

		assert.ErrorIs(t, service.Delete(context.Background(), buyer, 3), domain.ErrForbidden)
	})
}

func TestListByService(t *testing.T) {
	service, m := NewMock(t)

	m.repo.EXPECT().ListByService(gomock.Any(), 5).Return(nil, nil)
	reviews, err := service.ListByService(context.Background(), 5)

	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

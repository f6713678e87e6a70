package catalogservice

import (
	"context"
	"errors"
	"testing"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	tx := pg.NewMockTXManager(ctrl)
	service := New(repo, tx)
	defer ctrl.Finish()
	return service, repo, tx
}

func inTx(tx *pg.MockTXManager) {
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func validPackage() domain.Package {
	return domain.Package{Name: "Basic", Price: decimal.RequireFromString("50.00"), DeliveryDays: 3}
}

func TestCreateService(t *testing.T) {
	service, repo, _ := NewMock(t)
	seller := domain.Principal{UserID: 2, Role: domain.RoleSeller}

	tests := []struct {
		name          string
		caller        domain.Principal
		input         *domain.Service
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Seller publishes a service",
			caller: seller,
			input:  &domain.Service{Title: "Logo design", Packages: []domain.Package{validPackage()}},
			prepareMock: func() {
				repo.EXPECT().CreateService(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, s *domain.Service) (*domain.Service, error) {
					assert.Equal(t, 2, s.UserID)
					assert.Equal(t, []string{}, s.Packages[0].Features)
					s.ID = 11
					return s, nil
				})
			},
		},
		{
			name:          "Buyer cannot publish",
			caller:        domain.Principal{UserID: 3, Role: domain.RoleBuyer},
			input:         &domain.Service{Title: "Logo design", Packages: []domain.Package{validPackage()}},
			prepareMock:   func() {},
			expectedError: domain.ErrForbidden,
		},
		{
			name:          "Missing title",
			caller:        seller,
			input:         &domain.Service{Title: "  ", Packages: []domain.Package{validPackage()}},
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "No packages",
			caller:        seller,
			input:         &domain.Service{Title: "Logo design"},
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Negative package price",
			caller: seller,
			input: &domain.Service{Title: "Logo design", Packages: []domain.Package{
				{Name: "Basic", Price: decimal.RequireFromString("-1"), DeliveryDays: 3},
			}},
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Zero delivery time",
			caller: seller,
			input: &domain.Service{Title: "Logo design", Packages: []domain.Package{
				{Name: "Basic", Price: decimal.Zero, DeliveryDays: 0},
			}},
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Repository failure",
			caller: seller,
			input:  &domain.Service{Title: "Logo design", Packages: []domain.Package{validPackage()}},
			prepareMock: func() {
				repo.EXPECT().CreateService(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			created, err := service.CreateService(context.Background(), tt.caller, tt.input)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 11, created.ID)
			}
		})
	}
}

func TestGetService(t *testing.T) {
	service, repo, _ := NewMock(t)

	t.Run("Found", func(t *testing.T) {
		repo.EXPECT().FindServiceByID(gomock.Any(), 4).Return(&domain.Service{ID: 4, Title: "Logo design"}, nil)
		got, err := service.GetService(context.Background(), 4)
		assert.NoError(t, err)
		assert.Equal(t, "Logo design", got.Title)
	})

	t.Run("Missing", func(t *testing.T) {
		repo.EXPECT().FindServiceByID(gomock.Any(), 4).Return(nil, nil)
		_, err := service.GetService(context.Background(), 4)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListServices(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().ListServices(gomock.Any()).Return(nil, nil)
	list, err := service.ListServices(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	repo.EXPECT().ListServices(gomock.Any()).Return(nil, errors.New("db error"))
	_, err = service.ListServices(context.Background())
	assert.EqualError(t, err, "db error")
}

func TestListSellerServices(t *testing.T) {
	service, repo, _ := NewMock(t)
	seller := domain.Principal{UserID: 2, Role: domain.RoleSeller}

	repo.EXPECT().ListServicesBySeller(gomock.Any(), 2).Return([]domain.Service{{ID: 4, UserID: 2}}, nil)
	list, err := service.ListSellerServices(context.Background(), seller)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUpdateService(t *testing.T) {
	service, repo, tx := NewMock(t)
	seller := domain.Principal{UserID: 2, Role: domain.RoleSeller}
	basic := domain.Package{ID: 6, ServiceID: 4, Name: "Basic", Price: decimal.RequireFromString("50.00"), DeliveryDays: 3, Features: []string{}}
	premium := domain.Package{ID: 7, ServiceID: 4, Name: "Premium", Price: decimal.RequireFromString("90.00"), DeliveryDays: 5, Features: []string{"svg"}}
	current := func() *domain.Service {
		return &domain.Service{ID: 4, UserID: 2, Title: "Logo", Packages: []domain.Package{basic, premium}}
	}
	repriced := premium
	repriced.Price = decimal.RequireFromString("120")

	tests := []struct {
		name          string
		caller        domain.Principal
		input         *domain.Service
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Listing fields and a new package",
			caller: seller,
			input: &domain.Service{Title: "Logo design", Category: "design", Packages: []domain.Package{
				{Name: "Rush", Price: decimal.RequireFromString("150"), DeliveryDays: 1},
			}},
			prepareMock: func() {
				inTx(tx)
				repo.EXPECT().FindServiceForUpdate(gomock.Any(), 4).Return(current(), nil)
				repo.EXPECT().OrderedPackageIDs(gomock.Any(), 4).Return([]int{6}, nil)
				repo.EXPECT().AddPackage(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, p *domain.Package) error {
					assert.Equal(t, 4, p.ServiceID)
					assert.Equal(t, []string{}, p.Features)
					return nil
				})
				repo.EXPECT().UpdateService(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, s *domain.Service) error {
					assert.Equal(t, "Logo design", s.Title)
					assert.Equal(t, "design", s.Category)
					return nil
				})
				repo.EXPECT().FindServiceByID(gomock.Any(), 4).Return(&domain.Service{ID: 4, Title: "Logo design"}, nil)
			},
		},
		{
			name:   "Unordered package can be repriced",
			caller: seller,
			input:  &domain.Service{Title: "Logo", Packages: []domain.Package{repriced}},
			prepareMock: func() {
				inTx(tx)
				repo.EXPECT().FindServiceForUpdate(gomock.Any(), 4).Return(current(), nil)
				repo.EXPECT().OrderedPackageIDs(gomock.Any(), 4).Return([]int{6}, nil)
				repo.EXPECT().UpdatePackage(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, p *domain.Package) error {
					assert.Equal(t, 7, p.ID)
					assert.True(t, decimal.RequireFromString("120").Equal(p.Price))
					return nil
				})
				repo.EXPECT().UpdateService(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().FindServiceByID(gomock.Any(), 4).Return(&domain.Service{ID: 4, Title: "Logo"}, nil)
			},
		},
		{
			name:   "Ordered package resent unchanged",
			caller: seller,
			input:  &domain.Service{Title: "Logo", Packages: []domain.Package{basic}},
			prepareMock: func() {
				inTx(tx)
				repo.EXPECT().FindServiceForUpdate(gomock.Any(), 4).Return(current(), nil)
				repo.EXPECT().OrderedPackageIDs(gomock.Any(), 4).Return([]int{6}, nil)
				repo.EXPECT().UpdateService(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().FindServiceByID(gomock.Any(), 4).Return(&domain.Service{ID: 4, Title: "Logo"}, nil)
			},
		},
		{
			name:   "Ordered package cannot change",
			caller: seller,
			input: &domain.Service{Title: "Logo", Packages: []domain.Package{
				{ID: 6, Name: "Basic", Price: decimal.RequireFromString("10"), DeliveryDays: 3},
			}},
			prepareMock: func() {
				inTx(tx)
				repo.EXPECT().FindServiceForUpdate(gomock.Any(), 4).Return(current(), nil)
				repo.EXPECT().OrderedPackageIDs(gomock.Any(), 4).Return([]int{6}, nil)
			},
			expectedError: domain.ErrConflict,
		},
		{
			name:   "Package of another service",
			caller: seller,
			input: &domain.Service{Title: "Logo", Packages: []domain.Package{
				{ID: 99, Name: "Basic", Price: decimal.RequireFromString("10"), DeliveryDays: 3},
			}},
			prepareMock: func() {
				inTx(tx)
				repo.EXPECT().FindServiceForUpdate(gomock.Any(), 4).Return(current(), nil)
				repo.EXPECT().OrderedPackageIDs(gomock.Any(), 4).Return(nil, nil)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Someone else's service",
			caller: domain.Principal{UserID: 3, Role: domain.RoleSeller},
			input:  &domain.Service{Title: "Logo"},
			prepareMock: func() {
				inTx(tx)
				repo.EXPECT().FindServiceForUpdate(gomock.Any(), 4).Return(current(), nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:   "Missing service",
			caller: seller,
			input:  &domain.Service{Title: "Logo"},
			prepareMock: func() {
				inTx(tx)
				repo.EXPECT().FindServiceForUpdate(gomock.Any(), 4).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "Missing title",
			caller:        seller,
			input:         &domain.Service{Title: ""},
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			updated, err := service.UpdateService(context.Background(), tt.caller, 4, tt.input)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, updated)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 4, updated.ID)
			}
		})
	}
}

func TestDeleteService(t *testing.T) {
	service, repo, tx := NewMock(t)
	seller := domain.Principal{UserID: 2, Role: domain.RoleSeller}
	owned := &domain.Service{ID: 4, UserID: 2}

	tests := []struct {
		name          string
		caller        domain.Principal
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Owner deletes an unordered service",
			caller: seller,
			prepareMock: func() {
				inTx(tx)
				repo.EXPECT().FindServiceForUpdate(gomock.Any(), 4).Return(owned, nil)
				repo.EXPECT().OrderedPackageIDs(gomock.Any(), 4).Return(nil, nil)
				repo.EXPECT().DeleteService(gomock.Any(), 4).Return(nil)
			},
		},
		{
			name:   "Service with orders",
			caller: seller,
			prepareMock: func() {
				inTx(tx)
				repo.EXPECT().FindServiceForUpdate(gomock.Any(), 4).Return(owned, nil)
				repo.EXPECT().OrderedPackageIDs(gomock.Any(), 4).Return([]int{6}, nil)
			},
			expectedError: domain.ErrConflict,
		},
		{
			name:   "Not the owner",
			caller: domain.Principal{UserID: 3, Role: domain.RoleSeller},
			prepareMock: func() {
				inTx(tx)
				repo.EXPECT().FindServiceForUpdate(gomock.Any(), 4).Return(owned, nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:   "Missing service",
			caller: seller,
			prepareMock: func() {
				inTx(tx)
				repo.EXPECT().FindServiceForUpdate(gomock.Any(), 4).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.DeleteService(context.Background(), tt.caller, 4)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

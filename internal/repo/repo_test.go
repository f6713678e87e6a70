package repo

import (
	"testing"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	catalogrepo "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/repo/catalog-repo"
	messagerepo "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/repo/message-repo"
	notificationrepo "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/repo/notification-repo"
	orderrepo "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/repo/order-repo"
	profilerepo "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/repo/profile-repo"
	reviewrepo "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/repo/review-repo"
	userrepo "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &profilerepo.Repository{}, repo.ProfileRepo)
	assert.IsType(t, &catalogrepo.Repository{}, repo.CatalogRepo)
	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)
	assert.IsType(t, &messagerepo.Repository{}, repo.MessageRepo)
	assert.IsType(t, &reviewrepo.Repository{}, repo.ReviewRepo)
	assert.IsType(t, &notificationrepo.Repository{}, repo.NotificationRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

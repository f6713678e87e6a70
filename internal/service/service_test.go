package service

import (
	"testing"
	"time"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/repo"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/notificationservice"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/orderservice"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/profileservice"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/reviewservice"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/pkg/auth"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	txManager := pg.NewMockTXManager(ctrl)
	repos := repo.New(pool, txManager)

	services := New(repos, Deps{
		TxManager: txManager,
		JWT:       auth.NewMockJWTServiceInterface(ctrl),
		Hash:      auth.NewMockHashServiceInterface(ctrl),
		TokenTTL:  time.Hour,
		Presence:  notificationservice.NewMockPresence(ctrl),
		Scheduler: notificationservice.NewMockScheduler(ctrl),
	})

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.ProfileService)
	assert.NotNil(t, services.CatalogService)
	assert.NotNil(t, services.OrderService)
	assert.NotNil(t, services.ReviewService)
	assert.NotNil(t, services.PaymentService)
	assert.NotNil(t, services.NotificationService)

	// Order and review flows feed seller stats through the profile service.
	assert.Implements(t, (*orderservice.SellerStats)(nil), services.ProfileService)
	assert.Implements(t, (*reviewservice.RatingAggregator)(nil), services.ProfileService)
	assert.Implements(t, (*orderservice.Notifier)(nil), services.NotificationService)
	assert.IsType(t, &profileservice.Service{}, services.ProfileService)

	assert.NoError(t, pool.ExpectationsWereMet())
}

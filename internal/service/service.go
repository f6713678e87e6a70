package service

import (
	"time"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/auth"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/catalog"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/notifications"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/orders"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/payments"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/profiles"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/reviews"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/repo"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/authservice"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/catalogservice"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/notificationservice"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/orderservice"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/paymentservice"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/profileservice"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/reviewservice"
	pkgauth "github.com/Arpit-Yadav-12/Freelance-Fuze/pkg/auth"
)

type Services struct {
	AuthService         auth.Service
	ProfileService      profiles.Service
	CatalogService      catalog.Service
	OrderService        orders.Service
	ReviewService       reviews.Service
	PaymentService      payments.Service
	NotificationService notifications.Service
}

// Deps carries what the services need besides storage.
type Deps struct {
	TxManager pg.TXManager
	JWT       pkgauth.JWTServiceInterface
	Hash      pkgauth.HashServiceInterface
	TokenTTL  time.Duration
	Presence  notificationservice.Presence
	Scheduler notificationservice.Scheduler
}

func New(repo *repo.Repositories, deps Deps) *Services {
	authService := authservice.New(repo.UserRepo, deps.Hash, deps.JWT, deps.TokenTTL)
	notificationService := notificationservice.New(repo.NotificationRepo, deps.Presence, deps.Scheduler)
	profileService := profileservice.New(repo.ProfileRepo, repo.UserRepo, repo.ReviewRepo, deps.TxManager)
	catalogService := catalogservice.New(repo.CatalogRepo, deps.TxManager)
	orderService := orderservice.New(repo.OrderRepo, repo.CatalogRepo, repo.MessageRepo, profileService, notificationService, deps.TxManager)
	reviewService := reviewservice.New(repo.ReviewRepo, repo.OrderRepo, repo.CatalogRepo, profileService, deps.TxManager)
	paymentService := paymentservice.New(repo.OrderRepo, deps.TxManager)

	return &Services{
		AuthService:         authService,
		ProfileService:      profileService,
		CatalogService:      catalogService,
		OrderService:        orderService,
		ReviewService:       reviewService,
		PaymentService:      paymentService,
		NotificationService: notificationService,
	}
}

package repo

import (
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	catalogrepo "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/repo/catalog-repo"
	messagerepo "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/repo/message-repo"
	notificationrepo "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/repo/notification-repo"
	orderrepo "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/repo/order-repo"
	profilerepo "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/repo/profile-repo"
	reviewrepo "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/repo/review-repo"
	userrepo "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/repo/user-repo"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/authservice"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/catalogservice"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/notificationservice"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/orderservice"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/paymentservice"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/profileservice"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service/reviewservice"
)

// UserRepo serves both sign-up and seller promotion.
type UserRepo interface {
	authservice.Repo
	profileservice.UserRepo
}

type OrderRepo interface {
	orderservice.Repo
	reviewservice.OrderReader
	paymentservice.Repo
}

type ReviewRepo interface {
	reviewservice.Repo
	profileservice.RatingSource
}

type Repositories struct {
	UserRepo         UserRepo
	ProfileRepo      profileservice.Repo
	CatalogRepo      catalogservice.Repo
	OrderRepo        OrderRepo
	MessageRepo      orderservice.MessageRepo
	ReviewRepo       ReviewRepo
	NotificationRepo notificationservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		ProfileRepo:      profilerepo.New(conn),
		CatalogRepo:      catalogrepo.New(conn, txManager),
		OrderRepo:        orderrepo.New(conn),
		MessageRepo:      messagerepo.New(conn),
		ReviewRepo:       reviewrepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
	}
}

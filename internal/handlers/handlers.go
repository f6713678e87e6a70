package handlers

import (
	"net/http"

	_ "github.com/Arpit-Yadav-12/Freelance-Fuze/docs"
	authhandlers "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/auth"
	cataloghandlers "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/catalog"
	notificationhandlers "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/notifications"
	ordershandlers "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/orders"
	paymenthandlers "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/payments"
	profilehandlers "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/profiles"
	reviewhandlers "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/reviews"
	wshandlers "github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/ws"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/service"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	BecomeSeller(w http.ResponseWriter, r *http.Request)
	GetMyProfile(w http.ResponseWriter, r *http.Request)
	GetSellerProfile(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	CreateService(w http.ResponseWriter, r *http.Request)
	GetService(w http.ResponseWriter, r *http.Request)
	ListServices(w http.ResponseWriter, r *http.Request)
	ListSellerServices(w http.ResponseWriter, r *http.Request)
	UpdateService(w http.ResponseWriter, r *http.Request)
	DeleteService(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	CancelOrder(w http.ResponseWriter, r *http.Request)
	DeleteOrder(w http.ResponseWriter, r *http.Request)
}

type ReviewHandler interface {
	CreateReview(w http.ResponseWriter, r *http.Request)
	GetReview(w http.ResponseWriter, r *http.Request)
	UpdateReview(w http.ResponseWriter, r *http.Request)
	DeleteReview(w http.ResponseWriter, r *http.Request)
	ListServiceReviews(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Pay(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
	GetPayment(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	GetNotifications(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
}

type SocketHandler interface {
	Serve(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	ProfileHandler      ProfileHandler
	CatalogHandler      CatalogHandler
	OrderHandler        OrderHandler
	ReviewHandler       ReviewHandler
	PaymentHandler      PaymentHandler
	NotificationHandler NotificationHandler
	SocketHandler       SocketHandler

	tokens auth.TokenValidator
}

func New(s *service.Services, tokens auth.TokenValidator, presence wshandlers.Presence, clientOrigin string) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		ProfileHandler:      profilehandlers.New(s.ProfileService, s.AuthService),
		CatalogHandler:      cataloghandlers.New(s.CatalogService),
		OrderHandler:        ordershandlers.New(s.OrderService),
		ReviewHandler:       reviewhandlers.New(s.ReviewService),
		PaymentHandler:      paymenthandlers.New(s.PaymentService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
		SocketHandler:       wshandlers.New(tokens, presence, clientOrigin),
		tokens:              tokens,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		// The socket handler authenticates the handshake itself so the
		// token may also arrive as a query parameter.
		r.Get("/ws", h.SocketHandler.Serve)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.tokens))

			r.Route("/seller/profile", func(r chi.Router) {
				r.Post("/", h.ProfileHandler.BecomeSeller)
				r.Get("/", h.ProfileHandler.GetMyProfile)
			})
			r.Get("/seller/services", h.CatalogHandler.ListSellerServices)
			r.Get("/sellers/{id}/profile", h.ProfileHandler.GetSellerProfile)

			r.Route("/services", func(r chi.Router) {
				r.Post("/", h.CatalogHandler.CreateService)
				r.Get("/", h.CatalogHandler.ListServices)
				r.Get("/{id}", h.CatalogHandler.GetService)
				r.Put("/{id}", h.CatalogHandler.UpdateService)
				r.Delete("/{id}", h.CatalogHandler.DeleteService)
				r.Get("/{id}/reviews", h.ReviewHandler.ListServiceReviews)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.CreateOrder)
				r.Get("/", h.OrderHandler.GetOrders)
				r.Get("/{id}", h.OrderHandler.GetOrder)
				r.Delete("/{id}", h.OrderHandler.DeleteOrder)
				r.Put("/{id}/status", h.OrderHandler.UpdateStatus)
				r.Post("/{id}/cancel", h.OrderHandler.CancelOrder)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Post("/", h.ReviewHandler.CreateReview)
				r.Get("/{id}", h.ReviewHandler.GetReview)
				r.Put("/{id}", h.ReviewHandler.UpdateReview)
				r.Delete("/{id}", h.ReviewHandler.DeleteReview)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Post("/", h.PaymentHandler.Pay)
				r.Get("/", h.PaymentHandler.ListPayments)
				r.Get("/{id}", h.PaymentHandler.GetPayment)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.GetNotifications)
				r.Post("/read-all", h.NotificationHandler.MarkAllRead)
				r.Post("/{id}/read", h.NotificationHandler.MarkRead)
			})
		})
	})

	return r
}

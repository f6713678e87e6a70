package orderservice

import (
	"context"
	"fmt"
	"time"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

type Repo interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindParties(ctx context.Context, id int) (*domain.OrderParties, error)
	FindPartiesForUpdate(ctx context.Context, id int) (*domain.OrderParties, error)
	ListByBuyer(ctx context.Context, buyerID int) ([]domain.Order, error)
	ListBySeller(ctx context.Context, sellerID int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status string, completedAt *time.Time) (*domain.Order, error)
	Delete(ctx context.Context, id int) error
}

type Catalog interface {
	FindServiceByID(ctx context.Context, id int) (*domain.Service, error)
	FindPackage(ctx context.Context, id int) (*domain.Package, error)
}

type MessageRepo interface {
	FindByOrderID(ctx context.Context, orderID int) ([]domain.Message, error)
}

type SellerStats interface {
	RecordCompletedGig(ctx context.Context, sellerID int) (int, string, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID int, kind, message string, payload any) (*domain.Notification, error)
}

type Service struct {
	repo      Repo
	catalog   Catalog
	messages  MessageRepo
	stats     SellerStats
	notifier  Notifier
	txManager pg.TXManager
	now       func() time.Time
}

func New(repo Repo, catalog Catalog, messages MessageRepo, stats SellerStats, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		catalog:   catalog,
		messages:  messages,
		stats:     stats,
		notifier:  notifier,
		txManager: txManager,
		now:       time.Now,
	}
}

func (s *Service) Create(ctx context.Context, p domain.Principal, serviceID, packageID int, totalAmount decimal.Decimal) (*domain.Order, error) {
	if serviceID <= 0 || packageID <= 0 {
		return nil, domain.Validation("serviceId and packageId are required")
	}
	if !totalAmount.IsPositive() {
		return nil, domain.Validation("totalAmount must be positive")
	}

	var created *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		service, err := s.catalog.FindServiceByID(ctx, serviceID)
		if err != nil {
			zap.L().Error("can't find service", zap.Int("service_id", serviceID), zap.Error(err))
			return err
		}
		if service == nil {
			return domain.NotFound("service not found")
		}
		pkg, err := s.catalog.FindPackage(ctx, packageID)
		if err != nil {
			zap.L().Error("can't find package", zap.Int("package_id", packageID), zap.Error(err))
			return err
		}
		if pkg == nil {
			return domain.NotFound("package not found")
		}
		if pkg.ServiceID != service.ID {
			return domain.Validation("package does not belong to the service")
		}
		if service.UserID == p.UserID {
			return domain.Forbidden("you cannot order your own service")
		}

		created, err = s.repo.Create(ctx, &domain.Order{
			BuyerID:       p.UserID,
			ServiceID:     serviceID,
			PackageID:     packageID,
			Status:        domain.OrderStatusPending,
			PaymentStatus: domain.PaymentStatusPending,
			TotalAmount:   totalAmount,
		})
		if err != nil {
			zap.L().Error("can't create order", zap.Error(err))
			return err
		}

		_, err = s.notifier.Notify(ctx, service.UserID, domain.NotificationOrderCreated,
			fmt.Sprintf("New order received for %s", service.Title),
			domain.OrderPayload{OrderID: created.ID, ServiceID: serviceID, PackageID: packageID})
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("order created", zap.Int("order_id", created.ID), zap.Int("buyer_id", p.UserID))
	return created, nil
}

// GetOrder returns the order with its service, package and message thread.
// Only the buyer and the service owner may read it.
func (s *Service) GetOrder(ctx context.Context, p domain.Principal, orderID int) (*domain.OrderDetails, error) {
	parties, err := s.repo.FindParties(ctx, orderID)
	if err != nil {
		zap.L().Error("can't find order", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}
	if parties == nil {
		return nil, domain.NotFound("order not found")
	}
	if parties.BuyerID != p.UserID && parties.SellerID != p.UserID {
		return nil, domain.Forbidden("not authorized to view this order")
	}

	details := &domain.OrderDetails{Order: parties.Order}
	if details.Service, err = s.catalog.FindServiceByID(ctx, parties.ServiceID); err != nil {
		zap.L().Error("can't find service", zap.Int("service_id", parties.ServiceID), zap.Error(err))
		return nil, err
	}
	if details.Package, err = s.catalog.FindPackage(ctx, parties.PackageID); err != nil {
		zap.L().Error("can't find package", zap.Int("package_id", parties.PackageID), zap.Error(err))
		return nil, err
	}
	if details.Messages, err = s.messages.FindByOrderID(ctx, orderID); err != nil {
		zap.L().Error("can't find messages", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}
	return details, nil
}

// ListOrders returns incoming orders for sellers and purchases for everyone else.
func (s *Service) ListOrders(ctx context.Context, p domain.Principal) ([]domain.Order, error) {
	var (
		orders []domain.Order
		err    error
	)
	if p.IsSeller() {
		orders, err = s.repo.ListBySeller(ctx, p.UserID)
	} else {
		orders, err = s.repo.ListByBuyer(ctx, p.UserID)
	}
	if err != nil {
		zap.L().Error("can't list orders", zap.Int("user_id", p.UserID), zap.Error(err))
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// UpdateStatus moves an order along the seller chain. Completing an order
// also updates the seller's gig count and trophy.
func (s *Service) UpdateStatus(ctx context.Context, p domain.Principal, orderID int, status string) (*domain.Order, error) {
	var updated *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		parties, err := s.lock(ctx, orderID)
		if err != nil {
			return err
		}
		if parties.SellerID != p.UserID {
			return domain.Forbidden("not authorized to update this order")
		}
		if !domain.IsKnownOrderStatus(status) {
			return domain.Validation("invalid status")
		}
		if !domain.CanTransition(parties.Status, status) {
			return &domain.TransitionError{From: parties.Status, To: status}
		}

		var completedAt *time.Time
		if status == domain.OrderStatusCompleted {
			now := s.now()
			completedAt = &now
		}
		updated, err = s.repo.UpdateStatus(ctx, orderID, status, completedAt)
		if err != nil {
			zap.L().Error("can't update order status", zap.Int("order_id", orderID), zap.Error(err))
			return err
		}

		if status == domain.OrderStatusCompleted {
			if _, _, err = s.stats.RecordCompletedGig(ctx, parties.SellerID); err != nil {
				return err
			}
		}

		// Every seller-driven change, completion included, reaches the buyer
		// as order_updated; the new status travels in the payload.
		_, err = s.notifier.Notify(ctx, parties.BuyerID, domain.NotificationOrderUpdated,
			fmt.Sprintf("Order status updated to %s for %s", status, parties.ServiceTitle),
			domain.OrderPayload{OrderID: orderID, ServiceID: parties.ServiceID, Status: status})
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("order status updated", zap.Int("order_id", orderID), zap.String("status", status))
	return updated, nil
}

func (s *Service) Cancel(ctx context.Context, p domain.Principal, orderID int) (*domain.Order, error) {
	var cancelled *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		parties, err := s.lock(ctx, orderID)
		if err != nil {
			return err
		}
		if parties.BuyerID != p.UserID {
			return domain.Forbidden("not authorized to cancel this order")
		}
		if err = domain.CheckCancel(parties.Status); err != nil {
			return err
		}

		cancelled, err = s.repo.UpdateStatus(ctx, orderID, domain.OrderStatusCancelled, nil)
		if err != nil {
			zap.L().Error("can't cancel order", zap.Int("order_id", orderID), zap.Error(err))
			return err
		}

		_, err = s.notifier.Notify(ctx, parties.SellerID, domain.NotificationOrderCancelled,
			fmt.Sprintf("Order cancelled for %s", parties.ServiceTitle),
			domain.OrderPayload{OrderID: orderID, ServiceID: parties.ServiceID, Status: domain.OrderStatusCancelled})
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("order cancelled", zap.Int("order_id", orderID))
	return cancelled, nil
}

func (s *Service) Delete(ctx context.Context, p domain.Principal, orderID int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		parties, err := s.lock(ctx, orderID)
		if err != nil {
			return err
		}
		if parties.BuyerID != p.UserID {
			return domain.Forbidden("not authorized to delete this order")
		}
		if !domain.IsDeletable(&parties.Order) {
			return domain.Conflict("order can no longer be deleted")
		}
		if err = s.repo.Delete(ctx, orderID); err != nil {
			zap.L().Error("can't delete order", zap.Int("order_id", orderID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	zap.L().Info("order deleted", zap.Int("order_id", orderID))
	return nil
}

func (s *Service) lock(ctx context.Context, orderID int) (*domain.OrderParties, error) {
	parties, err := s.repo.FindPartiesForUpdate(ctx, orderID)
	if err != nil {
		zap.L().Error("can't lock order", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}
	if parties == nil {
		return nil, domain.NotFound("order not found")
	}
	return parties, nil
}

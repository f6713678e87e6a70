package paymentservice

import (
	"context"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

type Repo interface {
	FindParties(ctx context.Context, id int) (*domain.OrderParties, error)
	FindPartiesForUpdate(ctx context.Context, id int) (*domain.OrderParties, error)
	ListByBuyer(ctx context.Context, buyerID int) ([]domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, id int, paymentStatus string) (*domain.Order, error)
}

// Service is a payment stub: it records that the buyer paid the order
// total without talking to a gateway.
type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

func (s *Service) Pay(ctx context.Context, p domain.Principal, orderID int, amount decimal.Decimal) (*domain.Order, error) {
	if orderID <= 0 {
		return nil, domain.Validation("orderId is required")
	}
	if !amount.IsPositive() {
		return nil, domain.Validation("amount must be positive")
	}

	var paid *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		parties, err := s.repo.FindPartiesForUpdate(ctx, orderID)
		if err != nil {
			zap.L().Error("can't lock order", zap.Int("order_id", orderID), zap.Error(err))
			return err
		}
		if parties == nil {
			return domain.NotFound("order not found")
		}
		if parties.BuyerID != p.UserID {
			return domain.Forbidden("not authorized to pay for this order")
		}
		switch parties.Status {
		case domain.OrderStatusCancelled, domain.OrderStatusRejected:
			return domain.Conflict("order is " + parties.Status)
		}
		if parties.PaymentStatus == domain.PaymentStatusPaid {
			order := parties.Order
			paid = &order
			return nil
		}
		if !amount.Equal(parties.TotalAmount) {
			return domain.Validation("amount does not match the order total")
		}

		paid, err = s.repo.UpdatePaymentStatus(ctx, orderID, domain.PaymentStatusPaid)
		if err != nil {
			zap.L().Error("can't mark order paid", zap.Int("order_id", orderID), zap.Error(err))
			return err
		}
		zap.L().Info("order paid", zap.Int("order_id", orderID), zap.String("amount", amount.String()))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paid, nil
}

// List returns the payments the caller made, newest order first.
func (s *Service) List(ctx context.Context, p domain.Principal) ([]domain.Payment, error) {
	orders, err := s.repo.ListByBuyer(ctx, p.UserID)
	if err != nil {
		zap.L().Error("can't list buyer orders", zap.Int("user_id", p.UserID), zap.Error(err))
		return nil, err
	}
	payments := make([]domain.Payment, 0, len(orders))
	for _, o := range orders {
		if o.PaymentStatus == domain.PaymentStatusPending {
			continue
		}
		payments = append(payments, domain.PaymentOf(o))
	}
	return payments, nil
}

// Get returns the payment state of an order to either of its parties.
func (s *Service) Get(ctx context.Context, p domain.Principal, orderID int) (*domain.Payment, error) {
	parties, err := s.repo.FindParties(ctx, orderID)
	if err != nil {
		zap.L().Error("can't find order", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}
	if parties == nil {
		return nil, domain.NotFound("payment not found")
	}
	if parties.BuyerID != p.UserID && parties.SellerID != p.UserID {
		return nil, domain.Forbidden("not authorized to view this payment")
	}
	payment := domain.PaymentOf(parties.Order)
	return &payment, nil
}

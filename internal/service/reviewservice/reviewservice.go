package reviewservice

import (
	"context"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=reviewservice.go -destination=mock_reviewservice.go -package=reviewservice

type Repo interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id int) (*domain.Review, error)
	FindByUserAndOrder(ctx context.Context, userID, orderID int) (*domain.Review, error)
	Update(ctx context.Context, review *domain.Review) (*domain.Review, error)
	Delete(ctx context.Context, id int) error
	ListByService(ctx context.Context, serviceID int) ([]domain.Review, error)
}

type OrderReader interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
}

type Catalog interface {
	FindServiceByID(ctx context.Context, id int) (*domain.Service, error)
}

type RatingAggregator interface {
	RecomputeSellerRating(ctx context.Context, sellerID int) (domain.RatingSummary, error)
}

type Service struct {
	repo      Repo
	orders    OrderReader
	catalog   Catalog
	ratings   RatingAggregator
	txManager pg.TXManager
}

func New(repo Repo, orders OrderReader, catalog Catalog, ratings RatingAggregator, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		orders:    orders,
		catalog:   catalog,
		ratings:   ratings,
		txManager: txManager,
	}
}

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// Create stores a review for a completed and paid order of the caller and
// refreshes the seller's rating in the same transaction.
func (s *Service) Create(ctx context.Context, p domain.Principal, review *domain.Review) (*domain.Review, error) {
	if review.ServiceID <= 0 || review.OrderID <= 0 {
		return nil, domain.Validation("serviceId and orderId are required")
	}
	if !validRating(review.Rating) {
		return nil, domain.Validation("rating must be between 1 and 5")
	}
	review.UserID = p.UserID

	var created *domain.Review
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orders.FindByID(ctx, review.OrderID)
		if err != nil {
			zap.L().Error("can't find order", zap.Int("order_id", review.OrderID), zap.Error(err))
			return err
		}
		if order == nil || order.BuyerID != p.UserID || order.ServiceID != review.ServiceID ||
			order.Status != domain.OrderStatusCompleted || order.PaymentStatus != domain.PaymentStatusPaid {
			return domain.Forbidden("you can only review completed and paid orders")
		}

		existing, err := s.repo.FindByUserAndOrder(ctx, p.UserID, review.OrderID)
		if err != nil {
			zap.L().Error("can't find review", zap.Int("order_id", review.OrderID), zap.Error(err))
			return err
		}
		if existing != nil {
			return domain.Validation("you have already reviewed this order")
		}

		if created, err = s.repo.Create(ctx, review); err != nil {
			zap.L().Error("can't create review", zap.Int("order_id", review.OrderID), zap.Error(err))
			return err
		}
		return s.refreshRating(ctx, review.ServiceID)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("review created", zap.Int("review_id", created.ID), zap.Int("order_id", created.OrderID))
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find review", zap.Int("review_id", id), zap.Error(err))
		return nil, err
	}
	if review == nil {
		return nil, domain.NotFound("review not found")
	}
	return review, nil
}

func (s *Service) ListByService(ctx context.Context, serviceID int) ([]domain.Review, error) {
	reviews, err := s.repo.ListByService(ctx, serviceID)
	if err != nil {
		zap.L().Error("can't list reviews", zap.Int("service_id", serviceID), zap.Error(err))
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

func (s *Service) Update(ctx context.Context, p domain.Principal, id, rating int, comment string) (*domain.Review, error) {
	if !validRating(rating) {
		return nil, domain.Validation("rating must be between 1 and 5")
	}

	var updated *domain.Review
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		review, err := s.owned(ctx, p, id)
		if err != nil {
			return err
		}
		review.Rating = rating
		review.Comment = comment
		if updated, err = s.repo.Update(ctx, review); err != nil {
			zap.L().Error("can't update review", zap.Int("review_id", id), zap.Error(err))
			return err
		}
		return s.refreshRating(ctx, review.ServiceID)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, p domain.Principal, id int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		review, err := s.owned(ctx, p, id)
		if err != nil {
			return err
		}
		if err = s.repo.Delete(ctx, id); err != nil {
			zap.L().Error("can't delete review", zap.Int("review_id", id), zap.Error(err))
			return err
		}
		return s.refreshRating(ctx, review.ServiceID)
	})
}

func (s *Service) owned(ctx context.Context, p domain.Principal, id int) (*domain.Review, error) {
	review, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.UserID != p.UserID {
		return nil, domain.Forbidden("not authorized to modify this review")
	}
	return review, nil
}

func (s *Service) refreshRating(ctx context.Context, serviceID int) error {
	service, err := s.catalog.FindServiceByID(ctx, serviceID)
	if err != nil {
		zap.L().Error("can't find service", zap.Int("service_id", serviceID), zap.Error(err))
		return err
	}
	if service == nil {
		return domain.NotFound("service not found")
	}
	_, err = s.ratings.RecomputeSellerRating(ctx, service.UserID)
	return err
}

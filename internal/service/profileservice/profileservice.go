package profileservice

import (
	"context"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=profileservice.go -destination=mock_profileservice.go -package=profileservice

type Repo interface {
	Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	FindByUserID(ctx context.Context, userID int) (*domain.Profile, error)
	IncrementCompletedGigs(ctx context.Context, userID int) (int, error)
	SetTrophyLevel(ctx context.Context, userID int, level string) error
	UpdateRating(ctx context.Context, userID int, summary domain.RatingSummary) error
}

type UserRepo interface {
	UpdateRole(ctx context.Context, userID int, role string) error
}

type RatingSource interface {
	RatingsBySeller(ctx context.Context, sellerID int) ([]int, error)
}

type Service struct {
	repo      Repo
	users     UserRepo
	ratings   RatingSource
	txManager pg.TXManager
}

func New(repo Repo, users UserRepo, ratings RatingSource, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		users:     users,
		ratings:   ratings,
		txManager: txManager,
	}
}

// BecomeSeller stores the caller's seller profile and promotes the account.
func (s *Service) BecomeSeller(ctx context.Context, p domain.Principal, profile *domain.Profile) (*domain.Profile, error) {
	if profile.HourlyRate < 0 {
		return nil, domain.Validation("hourly rate must not be negative")
	}
	profile.UserID = p.UserID
	if profile.Skills == nil {
		profile.Skills = []string{}
	}

	var saved *domain.Profile
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.repo.Upsert(ctx, profile)
		if err != nil {
			zap.L().Error("can't save profile", zap.Int("user_id", p.UserID), zap.Error(err))
			return err
		}
		if err = s.users.UpdateRole(ctx, p.UserID, domain.RoleSeller); err != nil {
			zap.L().Error("can't promote user", zap.Int("user_id", p.UserID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("seller profile saved", zap.Int("user_id", p.UserID))
	return saved, nil
}

func (s *Service) GetProfile(ctx context.Context, userID int) (*domain.Profile, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find profile", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, domain.NotFound("profile not found")
	}
	return profile, nil
}

// RecomputeSellerRating rebuilds the seller's average from all of their reviews.
func (s *Service) RecomputeSellerRating(ctx context.Context, sellerID int) (domain.RatingSummary, error) {
	ratings, err := s.ratings.RatingsBySeller(ctx, sellerID)
	if err != nil {
		zap.L().Error("can't load seller ratings", zap.Int("seller_id", sellerID), zap.Error(err))
		return domain.RatingSummary{}, err
	}
	summary := domain.AggregateRatings(ratings)
	if err = s.repo.UpdateRating(ctx, sellerID, summary); err != nil {
		zap.L().Error("can't update seller rating", zap.Int("seller_id", sellerID), zap.Error(err))
		return domain.RatingSummary{}, err
	}
	return summary, nil
}

// RecordCompletedGig bumps the seller's completed gig count and
// reclassifies their trophy. Returns the new count and level.
func (s *Service) RecordCompletedGig(ctx context.Context, sellerID int) (int, string, error) {
	count, err := s.repo.IncrementCompletedGigs(ctx, sellerID)
	if err != nil {
		zap.L().Error("can't increment completed gigs", zap.Int("seller_id", sellerID), zap.Error(err))
		return 0, "", err
	}
	level := domain.ClassifyTrophy(count)
	if err = s.repo.SetTrophyLevel(ctx, sellerID, level); err != nil {
		zap.L().Error("can't set trophy level", zap.Int("seller_id", sellerID), zap.Error(err))
		return 0, "", err
	}
	return count, level, nil
}

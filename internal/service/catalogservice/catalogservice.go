package catalogservice

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=catalogservice.go -destination=mock_catalogservice.go -package=catalogservice

type Repo interface {
	CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error)
	FindServiceByID(ctx context.Context, id int) (*domain.Service, error)
	FindServiceForUpdate(ctx context.Context, id int) (*domain.Service, error)
	FindPackage(ctx context.Context, id int) (*domain.Package, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	ListServicesBySeller(ctx context.Context, sellerID int) ([]domain.Service, error)
	UpdateService(ctx context.Context, service *domain.Service) error
	AddPackage(ctx context.Context, p *domain.Package) error
	UpdatePackage(ctx context.Context, p *domain.Package) error
	OrderedPackageIDs(ctx context.Context, serviceID int) ([]int, error)
	DeleteService(ctx context.Context, id int) error
}

type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

func (s *Service) CreateService(ctx context.Context, p domain.Principal, service *domain.Service) (*domain.Service, error) {
	if !p.IsSeller() {
		return nil, domain.Forbidden("only sellers can publish services")
	}
	if strings.TrimSpace(service.Title) == "" {
		return nil, domain.Validation("title is required")
	}
	if len(service.Packages) == 0 {
		return nil, domain.Validation("at least one package is required")
	}
	if err := validatePackages(service.Packages); err != nil {
		return nil, err
	}
	service.UserID = p.UserID

	created, err := s.repo.CreateService(ctx, service)
	if err != nil {
		zap.L().Error("can't create service", zap.Int("user_id", p.UserID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("service created", zap.Int("service_id", created.ID), zap.Int("user_id", p.UserID))
	return created, nil
}

func (s *Service) GetService(ctx context.Context, id int) (*domain.Service, error) {
	service, err := s.repo.FindServiceByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find service", zap.Int("service_id", id), zap.Error(err))
		return nil, err
	}
	if service == nil {
		return nil, domain.NotFound("service not found")
	}
	return service, nil
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	services, err := s.repo.ListServices(ctx)
	if err != nil {
		zap.L().Error("can't list services", zap.Error(err))
		return nil, err
	}
	if services == nil {
		services = []domain.Service{}
	}
	return services, nil
}

// ListSellerServices returns the services the caller published.
func (s *Service) ListSellerServices(ctx context.Context, p domain.Principal) ([]domain.Service, error) {
	services, err := s.repo.ListServicesBySeller(ctx, p.UserID)
	if err != nil {
		zap.L().Error("can't list seller services", zap.Int("user_id", p.UserID), zap.Error(err))
		return nil, err
	}
	if services == nil {
		services = []domain.Service{}
	}
	return services, nil
}

// UpdateService rewrites the listing fields of a service owned by the
// caller. Packages with an id are edited in place, packages without one are
// added, and packages left out stay as they are. A package some order points
// at can no longer change.
func (s *Service) UpdateService(ctx context.Context, p domain.Principal, id int, update *domain.Service) (*domain.Service, error) {
	if strings.TrimSpace(update.Title) == "" {
		return nil, domain.Validation("title is required")
	}
	if err := validatePackages(update.Packages); err != nil {
		return nil, err
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.ownedForUpdate(ctx, p, id, "update")
		if err != nil {
			return err
		}
		ordered, err := s.repo.OrderedPackageIDs(ctx, id)
		if err != nil {
			zap.L().Error("can't get ordered packages", zap.Int("service_id", id), zap.Error(err))
			return err
		}

		for i := range update.Packages {
			pkg := &update.Packages[i]
			pkg.ServiceID = id
			if pkg.ID == 0 {
				if err := s.repo.AddPackage(ctx, pkg); err != nil {
					return err
				}
				continue
			}
			idx := slices.IndexFunc(current.Packages, func(existing domain.Package) bool { return existing.ID == pkg.ID })
			if idx < 0 {
				return domain.Validation(fmt.Sprintf("package %d does not belong to this service", pkg.ID))
			}
			if samePackage(current.Packages[idx], *pkg) {
				continue
			}
			if slices.Contains(ordered, pkg.ID) {
				return domain.Conflict(fmt.Sprintf("package %d is referenced by an order and cannot change", pkg.ID))
			}
			if err := s.repo.UpdatePackage(ctx, pkg); err != nil {
				return err
			}
		}

		current.Title = update.Title
		current.Description = update.Description
		current.Category = update.Category
		return s.repo.UpdateService(ctx, current)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("service updated", zap.Int("service_id", id), zap.Int("user_id", p.UserID))
	return s.GetService(ctx, id)
}

// DeleteService removes a service owned by the caller while no order
// references it.
func (s *Service) DeleteService(ctx context.Context, p domain.Principal, id int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.ownedForUpdate(ctx, p, id, "delete"); err != nil {
			return err
		}
		ordered, err := s.repo.OrderedPackageIDs(ctx, id)
		if err != nil {
			zap.L().Error("can't get ordered packages", zap.Int("service_id", id), zap.Error(err))
			return err
		}
		if len(ordered) > 0 {
			return domain.Conflict("service has orders and cannot be deleted")
		}
		return s.repo.DeleteService(ctx, id)
	})
	if err != nil {
		return err
	}
	zap.L().Info("service deleted", zap.Int("service_id", id), zap.Int("user_id", p.UserID))
	return nil
}

func (s *Service) ownedForUpdate(ctx context.Context, p domain.Principal, id int, action string) (*domain.Service, error) {
	service, err := s.repo.FindServiceForUpdate(ctx, id)
	if err != nil {
		zap.L().Error("can't lock service", zap.Int("service_id", id), zap.Error(err))
		return nil, err
	}
	if service == nil {
		return nil, domain.NotFound("service not found")
	}
	if service.UserID != p.UserID {
		return nil, domain.Forbidden("not authorized to " + action + " this service")
	}
	return service, nil
}

func validatePackages(packages []domain.Package) error {
	for i, pkg := range packages {
		if strings.TrimSpace(pkg.Name) == "" {
			return domain.Validation(fmt.Sprintf("package %d: name is required", i+1))
		}
		if pkg.Price.IsNegative() {
			return domain.Validation(fmt.Sprintf("package %d: price must not be negative", i+1))
		}
		if pkg.DeliveryDays <= 0 {
			return domain.Validation(fmt.Sprintf("package %d: delivery time must be positive", i+1))
		}
		if pkg.Features == nil {
			packages[i].Features = []string{}
		}
	}
	return nil
}

func samePackage(a, b domain.Package) bool {
	return a.Name == b.Name &&
		a.Description == b.Description &&
		a.Price.Equal(b.Price) &&
		a.DeliveryDays == b.DeliveryDays &&
		slices.Equal(a.Features, b.Features)
}

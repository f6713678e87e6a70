package catalogrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// CreateService stores a service together with its packages.
func (r *Repository) CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	serviceQuery := `
		INSERT INTO services (user_id, title, description, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	packageQuery := `
		INSERT INTO packages (service_id, name, description, price, delivery_days, features)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, serviceQuery, service.UserID, service.Title, service.Description, service.Category).
			Scan(&service.ID, &service.CreatedAt)
		if err != nil {
			zap.L().Error("can't save service", zap.Error(err))
			return err
		}
		for i := range service.Packages {
			p := &service.Packages[i]
			p.ServiceID = service.ID
			err := r.db.QueryRow(ctx, packageQuery, p.ServiceID, p.Name, p.Description, p.Price.String(), p.DeliveryDays, p.Features).
				Scan(&p.ID)
			if err != nil {
				zap.L().Error("can't save package", zap.Error(err), zap.String("package", p.Name))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return service, nil
}

const serviceColumns = `id, user_id, title, description, category, created_at`

func (r *Repository) FindServiceByID(ctx context.Context, id int) (*domain.Service, error) {
	return r.findService(ctx, id, false)
}

// FindServiceForUpdate is FindServiceByID with the service row locked until
// the surrounding transaction ends.
func (r *Repository) FindServiceForUpdate(ctx context.Context, id int) (*domain.Service, error) {
	return r.findService(ctx, id, true)
}

func (r *Repository) findService(ctx context.Context, id int, lock bool) (*domain.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE id = $1
	`
	if lock {
		query += ` FOR UPDATE`
	}
	s, err := scanService(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find service", zap.Error(err))
		return nil, err
	}

	packages, err := r.findPackages(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Packages = packages
	return s, nil
}

// ListServices returns every service newest first.
func (r *Repository) ListServices(ctx context.Context) ([]domain.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		ORDER BY created_at DESC, id DESC
	`
	return r.listServices(ctx, query)
}

func (r *Repository) ListServicesBySeller(ctx context.Context, sellerID int) ([]domain.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	return r.listServices(ctx, query, sellerID)
}

func (r *Repository) listServices(ctx context.Context, query string, args ...any) ([]domain.Service, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get services", zap.Error(err))
		return nil, err
	}
	var (
		services []domain.Service
		ids      []int
	)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			rows.Close()
			zap.L().Error("can't scan service row", zap.Error(err))
			return nil, err
		}
		services = append(services, *s)
		ids = append(ids, s.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		zap.L().Error("can't read services", zap.Error(err))
		return nil, err
	}
	if len(services) == 0 {
		return services, nil
	}

	packages, err := r.packagesOf(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range services {
		services[i].Packages = packages[services[i].ID]
	}
	return services, nil
}

// packagesOf loads the packages of several services in one round trip.
func (r *Repository) packagesOf(ctx context.Context, serviceIDs []int) (map[int][]domain.Package, error) {
	query := `
		SELECT id, service_id, name, description, price::text, delivery_days, features
		FROM packages
		WHERE service_id = ANY($1)
		ORDER BY price, id
	`
	rows, err := r.db.Query(ctx, query, serviceIDs)
	if err != nil {
		zap.L().Error("can't get packages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	byService := make(map[int][]domain.Package, len(serviceIDs))
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			zap.L().Error("can't scan package row", zap.Error(err))
			return nil, err
		}
		byService[p.ServiceID] = append(byService[p.ServiceID], *p)
	}
	return byService, rows.Err()
}

func (r *Repository) UpdateService(ctx context.Context, service *domain.Service) error {
	query := `
		UPDATE services
		SET title = $1, description = $2, category = $3
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, service.Title, service.Description, service.Category, service.ID)
	if err != nil {
		zap.L().Error("can't update service", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("service not found")
	}
	return nil
}

func (r *Repository) AddPackage(ctx context.Context, p *domain.Package) error {
	query := `
		INSERT INTO packages (service_id, name, description, price, delivery_days, features)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, p.ServiceID, p.Name, p.Description, p.Price.String(), p.DeliveryDays, p.Features).
		Scan(&p.ID)
	if err != nil {
		zap.L().Error("can't save package", zap.Error(err), zap.String("package", p.Name))
		return err
	}
	return nil
}

func (r *Repository) UpdatePackage(ctx context.Context, p *domain.Package) error {
	query := `
		UPDATE packages
		SET name = $1, description = $2, price = $3, delivery_days = $4, features = $5
		WHERE id = $6 AND service_id = $7
	`
	tag, err := r.db.Exec(ctx, query, p.Name, p.Description, p.Price.String(), p.DeliveryDays, p.Features, p.ID, p.ServiceID)
	if err != nil {
		zap.L().Error("can't update package", zap.Error(err), zap.Int("package_id", p.ID))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("package not found")
	}
	return nil
}

// OrderedPackageIDs lists the packages of a service that at least one order
// points at.
func (r *Repository) OrderedPackageIDs(ctx context.Context, serviceID int) ([]int, error) {
	query := `
		SELECT DISTINCT package_id
		FROM orders
		WHERE service_id = $1
		ORDER BY package_id
	`
	rows, err := r.db.Query(ctx, query, serviceID)
	if err != nil {
		zap.L().Error("can't get ordered packages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan package id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteService removes a service; its packages go with it.
func (r *Repository) DeleteService(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete service", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("service not found")
	}
	return nil
}

func (r *Repository) findPackages(ctx context.Context, serviceID int) ([]domain.Package, error) {
	query := `
		SELECT id, service_id, name, description, price::text, delivery_days, features
		FROM packages
		WHERE service_id = $1
		ORDER BY price, id
	`
	rows, err := r.db.Query(ctx, query, serviceID)
	if err != nil {
		zap.L().Error("can't get packages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var packages []domain.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			zap.L().Error("can't scan package row", zap.Error(err))
			return nil, err
		}
		packages = append(packages, *p)
	}
	return packages, rows.Err()
}

func (r *Repository) FindPackage(ctx context.Context, id int) (*domain.Package, error) {
	query := `
		SELECT id, service_id, name, description, price::text, delivery_days, features
		FROM packages
		WHERE id = $1
	`
	p, err := scanPackage(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find package", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func scanService(row pgx.Row) (*domain.Service, error) {
	var s domain.Service
	if err := row.Scan(&s.ID, &s.UserID, &s.Title, &s.Description, &s.Category, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanPackage(row pgx.Row) (*domain.Package, error) {
	var (
		p     domain.Package
		price string
	)
	if err := row.Scan(&p.ID, &p.ServiceID, &p.Name, &p.Description, &price, &p.DeliveryDays, &p.Features); err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parse package price %q: %w", price, err)
	}
	p.Price = amount
	return &p, nil
}

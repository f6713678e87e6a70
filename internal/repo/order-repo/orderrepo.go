package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const orderColumns = `o.id, o.buyer_id, o.service_id, o.package_id, o.status, o.payment_status, o.total_amount::text, o.created_at, o.updated_at, o.completed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanOrder(row pgx.Row, extra ...any) (*domain.Order, error) {
	var (
		o     domain.Order
		total string
	)
	dest := append([]any{&o.ID, &o.BuyerID, &o.ServiceID, &o.PackageID, &o.Status, &o.PaymentStatus,
		&total, &o.CreatedAt, &o.UpdatedAt, &o.CompletedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(total)
	if err != nil {
		return nil, fmt.Errorf("parse order total %q: %w", total, err)
	}
	o.TotalAmount = amount
	return &o, nil
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
		INSERT INTO orders (buyer_id, service_id, package_id, status, payment_status, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, order.BuyerID, order.ServiceID, order.PackageID,
		order.Status, order.PaymentStatus, order.TotalAmount.String()).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o WHERE o.id = $1`
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// FindParties loads the order with the owner of its service.
func (r *Repository) FindParties(ctx context.Context, id int) (*domain.OrderParties, error) {
	return r.findParties(ctx, id, false)
}

// FindPartiesForUpdate is FindParties with the order row locked until the
// surrounding transaction ends, so concurrent transitions serialize.
func (r *Repository) FindPartiesForUpdate(ctx context.Context, id int) (*domain.OrderParties, error) {
	return r.findParties(ctx, id, true)
}

func (r *Repository) findParties(ctx context.Context, id int, lock bool) (*domain.OrderParties, error) {
	query := `
		SELECT ` + orderColumns + `, s.user_id, s.title
		FROM orders o
		JOIN services s ON s.id = o.service_id
		WHERE o.id = $1
	`
	if lock {
		query += ` FOR UPDATE OF o`
	}
	var parties domain.OrderParties
	order, err := scanOrder(r.db.QueryRow(ctx, query, id), &parties.SellerID, &parties.ServiceTitle)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order parties", zap.Error(err))
		return nil, err
	}
	parties.Order = *order
	return &parties, nil
}

func (r *Repository) ListByBuyer(ctx context.Context, buyerID int) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		WHERE o.buyer_id = $1
		ORDER BY o.created_at DESC
	`
	return r.list(ctx, query, buyerID)
}

func (r *Repository) ListBySeller(ctx context.Context, sellerID int) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN services s ON s.id = o.service_id
		WHERE s.user_id = $1
		ORDER BY o.created_at DESC
	`
	return r.list(ctx, query, sellerID)
}

func (r *Repository) list(ctx context.Context, query string, userID int) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// UpdateStatus writes the status and completion time together so the two
// can never disagree.
func (r *Repository) UpdateStatus(ctx context.Context, id int, status string, completedAt *time.Time) (*domain.Order, error) {
	query := `
		UPDATE orders o
		SET status = $1, completed_at = $2, updated_at = NOW()
		WHERE o.id = $3
		RETURNING ` + orderColumns
	order, err := scanOrder(r.db.QueryRow(ctx, query, status, completedAt, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound("order not found")
	}
	if err != nil {
		zap.L().Error("failed to update order status", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int, paymentStatus string) (*domain.Order, error) {
	query := `
		UPDATE orders o
		SET payment_status = $1, updated_at = NOW()
		WHERE o.id = $2
		RETURNING ` + orderColumns
	order, err := scanOrder(r.db.QueryRow(ctx, query, paymentStatus, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound("order not found")
	}
	if err != nil {
		zap.L().Error("failed to update payment status", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete order", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("order not found")
	}
	return nil
}

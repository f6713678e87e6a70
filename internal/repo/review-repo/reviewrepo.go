package reviewrepo

import (
	"context"
	"errors"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

const reviewColumns = `id, user_id, service_id, order_id, rating, comment, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanReview(row pgx.Row) (*domain.Review, error) {
	var rv domain.Review
	err := row.Scan(&rv.ID, &rv.UserID, &rv.ServiceID, &rv.OrderID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query := `
		INSERT INTO reviews (user_id, service_id, order_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + reviewColumns
	created, err := scanReview(r.db.QueryRow(ctx, query, review.UserID, review.ServiceID, review.OrderID, review.Rating, review.Comment))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.Validation("you have already reviewed this order")
		}
		zap.L().Error("can't save review", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`
	rv, err := scanReview(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find review", zap.Error(err))
		return nil, err
	}
	return rv, nil
}

func (r *Repository) FindByUserAndOrder(ctx context.Context, userID, orderID int) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE user_id = $1 AND order_id = $2`
	rv, err := scanReview(r.db.QueryRow(ctx, query, userID, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find review", zap.Error(err))
		return nil, err
	}
	return rv, nil
}

func (r *Repository) Update(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query := `
		UPDATE reviews
		SET rating = $1, comment = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + reviewColumns
	rv, err := scanReview(r.db.QueryRow(ctx, query, review.Rating, review.Comment, review.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound("review not found")
	}
	if err != nil {
		zap.L().Error("can't update review", zap.Error(err))
		return nil, err
	}
	return rv, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete review", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("review not found")
	}
	return nil
}

func (r *Repository) ListByService(ctx context.Context, serviceID int) ([]domain.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE service_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, serviceID)
	if err != nil {
		zap.L().Error("can't get reviews", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			zap.L().Error("can't scan review row", zap.Error(err))
			return nil, err
		}
		reviews = append(reviews, *rv)
	}
	return reviews, rows.Err()
}

// RatingsBySeller returns every rating left on any service of the seller.
func (r *Repository) RatingsBySeller(ctx context.Context, sellerID int) ([]int, error) {
	query := `
		SELECT r.rating
		FROM reviews r
		JOIN services s ON s.id = r.service_id
		WHERE s.user_id = $1
	`
	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		zap.L().Error("can't get seller ratings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ratings []int
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			zap.L().Error("can't scan rating row", zap.Error(err))
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

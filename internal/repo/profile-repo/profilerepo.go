package profilerepo

import (
	"context"
	"errors"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const profileColumns = `id, user_id, bio, skills, hourly_rate, average_rating, total_reviews, completed_gigs, trophy_level, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.Bio, &p.Skills, &p.HourlyRate, &p.AverageRating,
		&p.TotalReviews, &p.CompletedGigs, &p.TrophyLevel, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert creates the profile or updates its editable fields. Derived
// statistics are never written here.
func (r *Repository) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, bio, skills, hourly_rate, trophy_level)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET bio = EXCLUDED.bio, skills = EXCLUDED.skills, hourly_rate = EXCLUDED.hourly_rate, updated_at = NOW()
		RETURNING ` + profileColumns
	p, err := scanProfile(r.db.QueryRow(ctx, query, profile.UserID, profile.Bio, profile.Skills, profile.HourlyRate, domain.TrophyNone))
	if err != nil {
		zap.L().Error("can't save profile", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	p, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find profile", zap.Error(err))
		return nil, err
	}
	return p, nil
}

// IncrementCompletedGigs adds one completed gig and returns the new count.
func (r *Repository) IncrementCompletedGigs(ctx context.Context, userID int) (int, error) {
	query := `
		UPDATE profiles
		SET completed_gigs = completed_gigs + 1, updated_at = NOW()
		WHERE user_id = $1
		RETURNING completed_gigs
	`
	var completed int
	err := r.db.QueryRow(ctx, query, userID).Scan(&completed)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.NotFound("seller profile not found")
	}
	if err != nil {
		zap.L().Error("can't increment completed gigs", zap.Error(err))
		return 0, err
	}
	return completed, nil
}

func (r *Repository) SetTrophyLevel(ctx context.Context, userID int, level string) error {
	query := `
		UPDATE profiles
		SET trophy_level = $1, updated_at = NOW()
		WHERE user_id = $2
	`
	if _, err := r.db.Exec(ctx, query, level, userID); err != nil {
		zap.L().Error("can't set trophy level", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateRating(ctx context.Context, userID int, summary domain.RatingSummary) error {
	query := `
		UPDATE profiles
		SET average_rating = $1, total_reviews = $2, updated_at = NOW()
		WHERE user_id = $3
	`
	tag, err := r.db.Exec(ctx, query, summary.AverageRating, summary.TotalReviews, userID)
	if err != nil {
		zap.L().Error("can't update rating", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("seller profile not found")
	}
	return nil
}

package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tahiratravels/backend/internal/domain"
)

// ReviewRepo defines the persistence operations for Reviews.
// Reviews are append-only: there is no update or delete.
type ReviewRepo interface {
	// Create inserts a review and returns it with id and created_at populated.
	Create(ctx context.Context, review domain.Review) (domain.Review, error)

	// ListByTour returns the reviews of a tour newest-first, with reviewer names.
	ListByTour(ctx context.Context, tourID int64) ([]domain.ReviewView, error)
}

// pgReviewRepo is the Postgres implementation of ReviewRepo.
type pgReviewRepo struct {
	db db
}

// NewReviewRepo constructs a ReviewRepo backed by the provided db connection.
func NewReviewRepo(db db) ReviewRepo {
	return &pgReviewRepo{db: db}
}

func (r *pgReviewRepo) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	const q = `
		INSERT INTO reviews (tour_id, user_id, comment)
		VALUES (@tour_id, @user_id, @comment)
		RETURNING id, created_at`

	args := pgx.NamedArgs{
		"tour_id": review.TourID,
		"user_id": review.UserID,
		"comment": review.Comment,
	}

	if err := r.db.QueryRow(ctx, q, args).Scan(&review.ID, &review.CreatedAt); err != nil {
		return domain.Review{}, fmt.Errorf("repo.ReviewRepo.Create: %w", err)
	}
	return review, nil
}

// ListByTour breaks created_at ties by id so reviews inserted in the same
// transaction still come back newest-first.
func (r *pgReviewRepo) ListByTour(ctx context.Context, tourID int64) ([]domain.ReviewView, error) {
	const q = `
		SELECT rv.id, u.user_name, rv.comment, rv.created_at
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		JOIN destinations d ON d.id = rv.tour_id AND d.state = 'active'
		WHERE rv.tour_id = @tour_id
		ORDER BY rv.created_at DESC, rv.id DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"tour_id": tourID})
	if err != nil {
		return nil, fmt.Errorf("repo.ReviewRepo.ListByTour: %w", err)
	}
	reviews, err := collect(rows, func(s scanner) (domain.ReviewView, error) {
		var v domain.ReviewView
		err := s.Scan(&v.ID, &v.UserName, &v.Comment, &v.CreatedAt)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("repo.ReviewRepo.ListByTour: scan: %w", err)
	}
	return reviews, nil
}

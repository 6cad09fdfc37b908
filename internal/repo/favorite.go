package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tahiratravels/backend/internal/domain"
)

// FavoriteRepo defines the persistence operations for the user_destinations
// join table. A row means "userID saved tourID"; absence means not saved.
type FavoriteRepo interface {
	// Exists reports whether userID has saved tourID.
	Exists(ctx context.Context, userID string, tourID int64) (bool, error)

	// Add saves tourID for userID. Idempotent: no error if already saved.
	Add(ctx context.Context, userID string, tourID int64) error

	// Remove deletes the favorite. Idempotent: no error if it was never saved.
	Remove(ctx context.Context, userID string, tourID int64) error

	// ListByUser returns the active tours userID has saved, ordered by tour id.
	ListByUser(ctx context.Context, userID string) ([]domain.FavoriteTour, error)
}

// pgFavoriteRepo is the Postgres implementation of FavoriteRepo.
type pgFavoriteRepo struct {
	db db
}

// NewFavoriteRepo constructs a FavoriteRepo backed by the provided db connection.
func NewFavoriteRepo(db db) FavoriteRepo {
	return &pgFavoriteRepo{db: db}
}

func (r *pgFavoriteRepo) Exists(ctx context.Context, userID string, tourID int64) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM user_destinations
			WHERE user_id = @user_id AND destination_id = @tour_id
		)`

	var exists bool
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID, "tour_id": tourID}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repo.FavoriteRepo.Exists: %w", err)
	}
	return exists, nil
}

// Add relies on the composite primary key: a concurrent duplicate insert is
// absorbed by ON CONFLICT instead of failing.
func (r *pgFavoriteRepo) Add(ctx context.Context, userID string, tourID int64) error {
	const q = `
		INSERT INTO user_destinations (user_id, destination_id)
		VALUES (@user_id, @tour_id)
		ON CONFLICT (user_id, destination_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"user_id": userID, "tour_id": tourID}); err != nil {
		return fmt.Errorf("repo.FavoriteRepo.Add: %w", err)
	}
	return nil
}

func (r *pgFavoriteRepo) Remove(ctx context.Context, userID string, tourID int64) error {
	const q = `DELETE FROM user_destinations WHERE user_id = @user_id AND destination_id = @tour_id`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"user_id": userID, "tour_id": tourID}); err != nil {
		return fmt.Errorf("repo.FavoriteRepo.Remove: %w", err)
	}
	return nil
}

func (r *pgFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]domain.FavoriteTour, error) {
	const q = `
		SELECT d.id, d.name, c.name, d.image_url
		FROM user_destinations ud
		JOIN destinations d ON d.id = ud.destination_id
		JOIN categories c   ON c.id = d.category_id
		WHERE ud.user_id = @user_id AND d.state = 'active'
		ORDER BY d.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.FavoriteRepo.ListByUser: %w", err)
	}
	favorites, err := collect(rows, func(s scanner) (domain.FavoriteTour, error) {
		var (
			f        domain.FavoriteTour
			imageURL pgtype.Text
		)
		err := s.Scan(&f.ID, &f.Name, &f.Category, &imageURL)
		f.ImageURL = imageURL.String
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("repo.FavoriteRepo.ListByUser: scan: %w", err)
	}
	return favorites, nil
}

package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tahiratravels/backend/internal/domain"
)

// BookingRepo defines the persistence operations for Bookings.
// Deletes are scoped by owner so one user can never remove another's booking.
type BookingRepo interface {
	// Create inserts a booking and returns it with id and created_at populated.
	Create(ctx context.Context, booking domain.Booking) (domain.Booking, error)

	// DeleteOwned removes the booking with the given id if it belongs to userID.
	// Reports whether a row was deleted.
	DeleteOwned(ctx context.Context, id int64, userID string) (bool, error)

	// ListByUser returns every booking owned by userID joined with its tour,
	// ordered by booking date.
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)

	// ExistsForTour reports whether userID has at least one booking for tourID.
	ExistsForTour(ctx context.Context, tourID int64, userID string) (bool, error)
}

// pgBookingRepo is the Postgres implementation of BookingRepo.
type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

func (r *pgBookingRepo) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	const q = `
		INSERT INTO bookings (user_id, tour_id, number_of_people, booking_date)
		VALUES (@user_id, @tour_id, @number_of_people, @booking_date)
		RETURNING id, created_at`

	args := pgx.NamedArgs{
		"user_id":          booking.UserID,
		"tour_id":          booking.TourID,
		"number_of_people": booking.NumberOfPeople,
		"booking_date":     booking.BookingDate,
	}

	if err := r.db.QueryRow(ctx, q, args).Scan(&booking.ID, &booking.CreatedAt); err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: %w", err)
	}
	return booking, nil
}

func (r *pgBookingRepo) DeleteOwned(ctx context.Context, id int64, userID string) (bool, error) {
	const q = `DELETE FROM bookings WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return false, fmt.Errorf("repo.BookingRepo.DeleteOwned: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByUser includes bookings whose tour was later soft-deleted: the booking
// itself still exists and its owner may want to cancel it.
func (r *pgBookingRepo) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	const q = `
		SELECT b.id, b.user_id, b.tour_id, b.number_of_people, b.booking_date, b.created_at,
		       d.name, d.image_url
		FROM bookings b
		JOIN destinations d ON d.id = b.tour_id
		WHERE b.user_id = @user_id
		ORDER BY b.booking_date, b.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.ListByUser: %w", err)
	}
	bookings, err := collect(rows, func(s scanner) (domain.Booking, error) {
		var (
			b        domain.Booking
			imageURL pgtype.Text
		)
		err := s.Scan(&b.ID, &b.UserID, &b.TourID, &b.NumberOfPeople, &b.BookingDate, &b.CreatedAt,
			&b.TourName, &imageURL)
		b.TourImageURL = imageURL.String
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.ListByUser: scan: %w", err)
	}
	return bookings, nil
}

func (r *pgBookingRepo) ExistsForTour(ctx context.Context, tourID int64, userID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM bookings WHERE tour_id = @tour_id AND user_id = @user_id)`

	var exists bool
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"tour_id": tourID, "user_id": userID}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repo.BookingRepo.ExistsForTour: %w", err)
	}
	return exists, nil
}

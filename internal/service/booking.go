package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tahiratravels/backend/internal/domain"
	"github.com/tahiratravels/backend/internal/repo"
)

// BookingService implements business logic for bookings.
type BookingService struct {
	bookings repo.BookingRepo
	tours    repo.TourRepo
	now      func() time.Time
}

// NewBookingService constructs a BookingService backed by the provided repos.
func NewBookingService(bookings repo.BookingRepo, tours repo.TourRepo) *BookingService {
	return &BookingService{bookings: bookings, tours: tours, now: time.Now}
}

// WithClock replaces the clock used to reject past booking dates.
func (s *BookingService) WithClock(now func() time.Time) *BookingService {
	s.now = now
	return s
}

// Create persists a booking owned by userID, whatever UserID the input carries.
// Returns domain.ErrValidation for invalid input or a booking date that is
// not in the future, and domain.ErrNotFound if the tour is absent or deleted.
func (s *BookingService) Create(ctx context.Context, booking domain.Booking, userID string) (domain.Booking, error) {
	booking.UserID = userID

	if err := validateStruct(booking); err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w", err)
	}
	if !booking.BookingDate.After(s.now()) {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w",
			domain.NewError(domain.ErrValidation, "booking_date must be in the future"))
	}
	if _, err := s.tours.GetActive(ctx, booking.TourID); err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w", tourNotFound(err))
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w", err)
	}
	return created, nil
}

// Delete removes booking id if userID owns it and reports whether it did.
// A missing booking and someone else's booking both yield false with a nil
// error. A store failure yields false together with the error.
func (s *BookingService) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	ok, err := s.bookings.DeleteOwned(ctx, id, userID)
	if err != nil {
		return false, fmt.Errorf("service.BookingService.Delete: %w", err)
	}
	return ok, nil
}

// ListForUser returns the bookings owned by userID. Always non-nil.
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.ListForUser: %w", err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}

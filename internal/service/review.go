package service

import (
	"context"
	"fmt"

	"github.com/tahiratravels/backend/internal/domain"
	"github.com/tahiratravels/backend/internal/repo"
)

// ReviewService implements business logic for reviews.
// Only users who booked a tour may review it.
type ReviewService struct {
	reviews  repo.ReviewRepo
	bookings repo.BookingRepo
	tours    repo.TourRepo
}

// NewReviewService constructs a ReviewService backed by the provided repos.
func NewReviewService(reviews repo.ReviewRepo, bookings repo.BookingRepo, tours repo.TourRepo) *ReviewService {
	return &ReviewService{reviews: reviews, bookings: bookings, tours: tours}
}

// ListForTour returns the reviews of a tour, newest first. Always non-nil.
// Returns domain.ErrNotFound if the tour is absent or deleted.
func (s *ReviewService) ListForTour(ctx context.Context, tourID int64) ([]domain.ReviewView, error) {
	if _, err := s.tours.GetActive(ctx, tourID); err != nil {
		return nil, fmt.Errorf("service.ReviewService.ListForTour: %w", tourNotFound(err))
	}
	reviews, err := s.reviews.ListByTour(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("service.ReviewService.ListForTour: %w", err)
	}
	if reviews == nil {
		reviews = []domain.ReviewView{}
	}
	return reviews, nil
}

// CanReview reports whether userID has booked tourID at least once.
// Anonymous callers (empty userID) can never review.
func (s *ReviewService) CanReview(ctx context.Context, tourID int64, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	ok, err := s.bookings.ExistsForTour(ctx, tourID, userID)
	if err != nil {
		return false, fmt.Errorf("service.ReviewService.CanReview: %w", err)
	}
	return ok, nil
}

// Add stores a review of tourID by userID.
// Returns domain.ErrValidation for an empty or over-long comment,
// domain.ErrNotFound if the tour is absent or deleted, and
// domain.ErrForbidden if userID never booked the tour.
func (s *ReviewService) Add(ctx context.Context, tourID int64, userID, comment string) (domain.Review, error) {
	review := domain.Review{TourID: tourID, UserID: userID, Comment: comment}
	if err := validateStruct(review); err != nil {
		return domain.Review{}, fmt.Errorf("service.ReviewService.Add: %w", err)
	}
	if _, err := s.tours.GetActive(ctx, tourID); err != nil {
		return domain.Review{}, fmt.Errorf("service.ReviewService.Add: %w", tourNotFound(err))
	}

	ok, err := s.CanReview(ctx, tourID, userID)
	if err != nil {
		return domain.Review{}, fmt.Errorf("service.ReviewService.Add: %w", err)
	}
	if !ok {
		return domain.Review{}, fmt.Errorf("service.ReviewService.Add: %w",
			domain.NewError(domain.ErrForbidden, "Only travellers who booked this tour can review it."))
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return domain.Review{}, fmt.Errorf("service.ReviewService.Add: %w", err)
	}
	return created, nil
}

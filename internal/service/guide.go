package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tahiratravels/backend/internal/domain"
	"github.com/tahiratravels/backend/internal/repo"
)

const guideNotFoundMessage = "Tour guide not found!"

// TourGuideService implements business logic for tour guides.
type TourGuideService struct {
	guides repo.GuideRepo
	tours  repo.TourRepo
}

// NewTourGuideService constructs a TourGuideService backed by the provided repos.
func NewTourGuideService(guides repo.GuideRepo, tours repo.TourRepo) *TourGuideService {
	return &TourGuideService{guides: guides, tours: tours}
}

// ForTour returns the first guide (lowest id) attached to tourID.
// Returns domain.ErrNotFound when the tour has no guide.
func (s *TourGuideService) ForTour(ctx context.Context, tourID int64) (domain.TourGuide, error) {
	guide, err := s.guides.FirstForTour(ctx, tourID)
	if err != nil {
		return domain.TourGuide{}, fmt.Errorf("service.TourGuideService.ForTour: %w", guideNotFound(err))
	}
	return guide, nil
}

// ByID returns a single guide. Returns domain.ErrNotFound if absent.
func (s *TourGuideService) ByID(ctx context.Context, id int64) (domain.TourGuide, error) {
	guide, err := s.guides.GetByID(ctx, id)
	if err != nil {
		return domain.TourGuide{}, fmt.Errorf("service.TourGuideService.ByID: %w", guideNotFound(err))
	}
	return guide, nil
}

// Add validates a guide and attaches it to an active tour.
func (s *TourGuideService) Add(ctx context.Context, guide domain.TourGuide) (domain.TourGuide, error) {
	if err := validateStruct(guide); err != nil {
		return domain.TourGuide{}, fmt.Errorf("service.TourGuideService.Add: %w", err)
	}
	if _, err := s.tours.GetActive(ctx, guide.TourID); err != nil {
		return domain.TourGuide{}, fmt.Errorf("service.TourGuideService.Add: %w", tourNotFound(err))
	}

	created, err := s.guides.Create(ctx, guide)
	if err != nil {
		return domain.TourGuide{}, fmt.Errorf("service.TourGuideService.Add: %w", err)
	}
	return created, nil
}

func guideNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.WrapError(domain.ErrNotFound, guideNotFoundMessage, err)
	}
	return err
}

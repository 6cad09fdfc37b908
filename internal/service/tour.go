// Package service contains the business logic for the Tahira Travels API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tahiratravels/backend/internal/domain"
	"github.com/tahiratravels/backend/internal/repo"
)

const (
	// displayDateLayout is dd-MM-yyyy, used on the details page.
	displayDateLayout = "02-01-2006"
	// formDateLayout is yyyy-MM-dd, the value format of HTML date inputs.
	formDateLayout = "2006-01-02"
)

const (
	tourNotFoundMessage = "Destination not found!"
	notEditableMessage  = "Destination not found or you don't have permission to edit it!"
	notDeletableMessage = "Destination not found or you don't have permission to delete it!"
)

// TourService implements business logic for tours and favorites.
// Ownership checks report domain.ErrNotFound, never a distinct forbidden error,
// so a non-author cannot tell someone else's tour from a missing one.
type TourService struct {
	tours      repo.TourRepo
	favorites  repo.FavoriteRepo
	categories repo.CategoryRepo
}

// NewTourService constructs a TourService backed by the provided repos.
func NewTourService(tours repo.TourRepo, favorites repo.FavoriteRepo, categories repo.CategoryRepo) *TourService {
	return &TourService{tours: tours, favorites: favorites, categories: categories}
}

// List returns one page of active tours annotated for userID (which may be
// empty for anonymous callers) and the total number of matching tours.
func (s *TourService) List(ctx context.Context, userID string, filter domain.TourFilter) ([]domain.TourSummary, int64, error) {
	tours, total, err := s.tours.List(ctx, userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TourService.List: %w", err)
	}
	if tours == nil {
		tours = []domain.TourSummary{}
	}
	return tours, total, nil
}

// Details returns the read view of an active tour.
// Returns domain.ErrNotFound if the tour is absent or deleted.
func (s *TourService) Details(ctx context.Context, id int64, userID string) (domain.TourDetails, error) {
	tour, err := s.tours.GetActive(ctx, id)
	if err != nil {
		return domain.TourDetails{}, fmt.Errorf("service.TourService.Details: %w", tourNotFound(err))
	}

	saved := false
	if userID != "" {
		if saved, err = s.favorites.Exists(ctx, userID, id); err != nil {
			return domain.TourDetails{}, fmt.Errorf("service.TourService.Details: %w", err)
		}
	}

	return domain.TourDetails{
		ID:          tour.ID,
		Name:        tour.Name,
		Description: tour.Description,
		ImageURL:    tour.ImageURL,
		Category:    tour.CategoryName,
		CreatedOn:   tour.CreatedOn.Format(displayDateLayout),
		Author:      tour.AuthorName,
		AuthorID:    tour.AuthorID,
		IsAuthor:    userID != "" && tour.AuthorID == userID,
		IsSaved:     saved,
	}, nil
}

// Create validates input and persists a new tour authored by userID.
// Returns domain.ErrValidation for invalid input or an unknown category.
func (s *TourService) Create(ctx context.Context, input domain.TourInput, userID string) (domain.Tour, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Create: %w", err)
	}

	created, err := s.tours.Create(ctx, domain.Tour{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		AuthorID:    userID,
		CategoryID:  input.CategoryID,
		CreatedOn:   input.CreatedOn,
	})
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Create: %w", err)
	}
	return created, nil
}

// GetForEdit returns the pre-filled edit form of a tour authored by userID.
func (s *TourService) GetForEdit(ctx context.Context, id int64, userID string) (domain.TourEditForm, error) {
	tour, err := s.tours.GetOwned(ctx, id, userID)
	if err != nil {
		return domain.TourEditForm{}, fmt.Errorf("service.TourService.GetForEdit: %w", ownedNotFound(err, notEditableMessage))
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return domain.TourEditForm{}, fmt.Errorf("service.TourService.GetForEdit: %w", err)
	}

	return domain.TourEditForm{
		ID:          tour.ID,
		Name:        tour.Name,
		Description: tour.Description,
		ImageURL:    tour.ImageURL,
		CategoryID:  tour.CategoryID,
		CreatedOn:   tour.CreatedOn.Format(formDateLayout),
		Categories:  categories,
	}, nil
}

// Edit overwrites the editable fields of a tour authored by userID.
// Returns domain.ErrNotFound when the tour is absent, deleted, or not the
// caller's, and domain.ErrValidation for invalid input.
func (s *TourService) Edit(ctx context.Context, id int64, input domain.TourInput, userID string) error {
	if _, err := s.tours.GetOwned(ctx, id, userID); err != nil {
		return fmt.Errorf("service.TourService.Edit: %w", ownedNotFound(err, notEditableMessage))
	}
	if err := s.validateInput(ctx, input); err != nil {
		return fmt.Errorf("service.TourService.Edit: %w", err)
	}

	err := s.tours.Update(ctx, domain.Tour{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		AuthorID:    userID,
		CategoryID:  input.CategoryID,
		CreatedOn:   input.CreatedOn,
	})
	if err != nil {
		return fmt.Errorf("service.TourService.Edit: %w", ownedNotFound(err, notEditableMessage))
	}
	return nil
}

// GetForDelete returns the confirmation view of a tour authored by userID.
func (s *TourService) GetForDelete(ctx context.Context, id int64, userID string) (domain.TourDeleteView, error) {
	tour, err := s.tours.GetOwned(ctx, id, userID)
	if err != nil {
		return domain.TourDeleteView{}, fmt.Errorf("service.TourService.GetForDelete: %w", ownedNotFound(err, notDeletableMessage))
	}
	return domain.TourDeleteView{
		ID:       tour.ID,
		Name:     tour.Name,
		Author:   tour.AuthorName,
		AuthorID: tour.AuthorID,
	}, nil
}

// Delete soft-deletes a tour authored by userID.
func (s *TourService) Delete(ctx context.Context, id int64, userID string) error {
	if err := s.tours.SoftDelete(ctx, id, userID); err != nil {
		return fmt.Errorf("service.TourService.Delete: %w", ownedNotFound(err, notDeletableMessage))
	}
	return nil
}

// Save marks an active tour as a favorite of userID. Saving twice is a no-op.
func (s *TourService) Save(ctx context.Context, tourID int64, userID string) error {
	if _, err := s.tours.GetActive(ctx, tourID); err != nil {
		return fmt.Errorf("service.TourService.Save: %w", tourNotFound(err))
	}
	if err := s.favorites.Add(ctx, userID, tourID); err != nil {
		return fmt.Errorf("service.TourService.Save: %w", err)
	}
	return nil
}

// RemoveFavorite unmarks a favorite. Removing one that was never saved is a no-op.
func (s *TourService) RemoveFavorite(ctx context.Context, tourID int64, userID string) error {
	if err := s.favorites.Remove(ctx, userID, tourID); err != nil {
		return fmt.Errorf("service.TourService.RemoveFavorite: %w", err)
	}
	return nil
}

// Favorites returns the active tours userID has saved.
func (s *TourService) Favorites(ctx context.Context, userID string) ([]domain.FavoriteTour, error) {
	favorites, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.TourService.Favorites: %w", err)
	}
	if favorites == nil {
		favorites = []domain.FavoriteTour{}
	}
	return favorites, nil
}

// IsSaved reports whether userID has saved tourID.
func (s *TourService) IsSaved(ctx context.Context, tourID int64, userID string) (bool, error) {
	saved, err := s.favorites.Exists(ctx, userID, tourID)
	if err != nil {
		return false, fmt.Errorf("service.TourService.IsSaved: %w", err)
	}
	return saved, nil
}

func (s *TourService) validateInput(ctx context.Context, input domain.TourInput) error {
	if err := validateStruct(input); err != nil {
		return err
	}
	ok, err := s.categories.Exists(ctx, input.CategoryID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewError(domain.ErrValidation, "category_id does not name an existing category")
	}
	return nil
}

// tourNotFound gives repo not-found errors the user-facing tour message.
func tourNotFound(err error) error {
	return ownedNotFound(err, tourNotFoundMessage)
}

// ownedNotFound attaches message to repo not-found errors. Edit and delete use a
// message that covers both a missing tour and one the caller does not own.
func ownedNotFound(err error, message string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.WrapError(domain.ErrNotFound, message, err)
	}
	return err
}

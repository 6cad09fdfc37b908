package service_test

import (
	"context"

	"github.com/tahiratravels/backend/internal/domain"
	"github.com/tahiratravels/backend/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field: set only the ones your test needs.
// Calling an unset method panics, which flags an unexpected repo call.

type mockTourRepo struct {
	create     func(ctx context.Context, tour domain.Tour) (domain.Tour, error)
	getActive  func(ctx context.Context, id int64) (domain.Tour, error)
	getOwned   func(ctx context.Context, id int64, authorID string) (domain.Tour, error)
	list       func(ctx context.Context, userID string, filter domain.TourFilter) ([]domain.TourSummary, int64, error)
	update     func(ctx context.Context, tour domain.Tour) error
	softDelete func(ctx context.Context, id int64, authorID string) error
	count      func(ctx context.Context) (int64, error)
}

func (m *mockTourRepo) Create(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	return m.create(ctx, tour)
}
func (m *mockTourRepo) GetActive(ctx context.Context, id int64) (domain.Tour, error) {
	return m.getActive(ctx, id)
}
func (m *mockTourRepo) GetOwned(ctx context.Context, id int64, authorID string) (domain.Tour, error) {
	return m.getOwned(ctx, id, authorID)
}
func (m *mockTourRepo) List(ctx context.Context, userID string, filter domain.TourFilter) ([]domain.TourSummary, int64, error) {
	return m.list(ctx, userID, filter)
}
func (m *mockTourRepo) Update(ctx context.Context, tour domain.Tour) error {
	return m.update(ctx, tour)
}
func (m *mockTourRepo) SoftDelete(ctx context.Context, id int64, authorID string) error {
	return m.softDelete(ctx, id, authorID)
}
func (m *mockTourRepo) Count(ctx context.Context) (int64, error) {
	return m.count(ctx)
}

type mockFavoriteRepo struct {
	exists     func(ctx context.Context, userID string, tourID int64) (bool, error)
	add        func(ctx context.Context, userID string, tourID int64) error
	remove     func(ctx context.Context, userID string, tourID int64) error
	listByUser func(ctx context.Context, userID string) ([]domain.FavoriteTour, error)
}

func (m *mockFavoriteRepo) Exists(ctx context.Context, userID string, tourID int64) (bool, error) {
	return m.exists(ctx, userID, tourID)
}
func (m *mockFavoriteRepo) Add(ctx context.Context, userID string, tourID int64) error {
	return m.add(ctx, userID, tourID)
}
func (m *mockFavoriteRepo) Remove(ctx context.Context, userID string, tourID int64) error {
	return m.remove(ctx, userID, tourID)
}
func (m *mockFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]domain.FavoriteTour, error) {
	return m.listByUser(ctx, userID)
}

type mockCategoryRepo struct {
	list   func(ctx context.Context) ([]domain.Category, error)
	exists func(ctx context.Context, id int64) (bool, error)
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	return m.list(ctx)
}
func (m *mockCategoryRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return m.exists(ctx, id)
}

type mockBookingRepo struct {
	create        func(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	deleteOwned   func(ctx context.Context, id int64, userID string) (bool, error)
	listByUser    func(ctx context.Context, userID string) ([]domain.Booking, error)
	existsForTour func(ctx context.Context, tourID int64, userID string) (bool, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	return m.create(ctx, booking)
}
func (m *mockBookingRepo) DeleteOwned(ctx context.Context, id int64, userID string) (bool, error) {
	return m.deleteOwned(ctx, id, userID)
}
func (m *mockBookingRepo) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return m.listByUser(ctx, userID)
}
func (m *mockBookingRepo) ExistsForTour(ctx context.Context, tourID int64, userID string) (bool, error) {
	return m.existsForTour(ctx, tourID, userID)
}

type mockReviewRepo struct {
	create     func(ctx context.Context, review domain.Review) (domain.Review, error)
	listByTour func(ctx context.Context, tourID int64) ([]domain.ReviewView, error)
}

func (m *mockReviewRepo) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	return m.create(ctx, review)
}
func (m *mockReviewRepo) ListByTour(ctx context.Context, tourID int64) ([]domain.ReviewView, error) {
	return m.listByTour(ctx, tourID)
}

type mockGuideRepo struct {
	create       func(ctx context.Context, guide domain.TourGuide) (domain.TourGuide, error)
	getByID      func(ctx context.Context, id int64) (domain.TourGuide, error)
	firstForTour func(ctx context.Context, tourID int64) (domain.TourGuide, error)
}

func (m *mockGuideRepo) Create(ctx context.Context, guide domain.TourGuide) (domain.TourGuide, error) {
	return m.create(ctx, guide)
}
func (m *mockGuideRepo) GetByID(ctx context.Context, id int64) (domain.TourGuide, error) {
	return m.getByID(ctx, id)
}
func (m *mockGuideRepo) FirstForTour(ctx context.Context, tourID int64) (domain.TourGuide, error) {
	return m.firstForTour(ctx, tourID)
}

type mockUserRepo struct {
	create     func(ctx context.Context, user domain.User) (domain.User, error)
	getByID    func(ctx context.Context, id string) (domain.User, error)
	getByEmail func(ctx context.Context, email string) (domain.User, error)
	listExcept func(ctx context.Context, userID string) ([]domain.User, error)
	rolesFor   func(ctx context.Context, userID string) ([]string, error)
	roleExists func(ctx context.Context, role string) (bool, error)
	addToRole  func(ctx context.Context, userID, role string) error
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	return m.create(ctx, user)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getByEmail(ctx, email)
}
func (m *mockUserRepo) ListExcept(ctx context.Context, userID string) ([]domain.User, error) {
	return m.listExcept(ctx, userID)
}
func (m *mockUserRepo) RolesFor(ctx context.Context, userID string) ([]string, error) {
	return m.rolesFor(ctx, userID)
}
func (m *mockUserRepo) RoleExists(ctx context.Context, role string) (bool, error) {
	return m.roleExists(ctx, role)
}
func (m *mockUserRepo) AddToRole(ctx context.Context, userID, role string) error {
	return m.addToRole(ctx, userID, role)
}

// compile-time checks: every mock must satisfy its repo interface.
var (
	_ repo.TourRepo     = (*mockTourRepo)(nil)
	_ repo.FavoriteRepo = (*mockFavoriteRepo)(nil)
	_ repo.CategoryRepo = (*mockCategoryRepo)(nil)
	_ repo.BookingRepo  = (*mockBookingRepo)(nil)
	_ repo.ReviewRepo   = (*mockReviewRepo)(nil)
	_ repo.GuideRepo    = (*mockGuideRepo)(nil)
	_ repo.UserRepo     = (*mockUserRepo)(nil)
)

// activeTour returns a tour as the repo would load it.
func activeTour(id int64, authorID string) domain.Tour {
	return domain.Tour{
		ID:           id,
		Name:         "Sunny Beach",
		Description:  "A beautiful beach with golden sands.",
		AuthorID:     authorID,
		AuthorName:   "author@example.com",
		CategoryID:   1,
		CategoryName: "Beach Escapes",
		State:        domain.TourActive,
	}
}

// tourRepoWith returns a tour repo whose reads find exactly the given tours,
// honouring ownership the way the Postgres repo does.
func tourRepoWith(tours ...domain.Tour) *mockTourRepo {
	find := func(id int64) (domain.Tour, bool) {
		for _, t := range tours {
			if t.ID == id && t.Active() {
				return t, true
			}
		}
		return domain.Tour{}, false
	}
	return &mockTourRepo{
		getActive: func(_ context.Context, id int64) (domain.Tour, error) {
			if t, ok := find(id); ok {
				return t, nil
			}
			return domain.Tour{}, domain.ErrNotFound
		},
		getOwned: func(_ context.Context, id int64, authorID string) (domain.Tour, error) {
			if t, ok := find(id); ok && t.AuthorID == authorID {
				return t, nil
			}
			return domain.Tour{}, domain.ErrNotFound
		},
	}
}

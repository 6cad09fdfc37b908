// Package handler implements the HTTP handlers for the Tahira Travels API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (tour.go, booking.go, etc.) but share the same Server struct so they
// can access its dependencies. Routes wires them into a chi router.
package handler

import (
	"context"
	"log/slog"

	"github.com/tahiratravels/backend/internal/domain"
)

// The *Servicer interfaces describe the business operations the handlers
// depend on. Defining them here (in the consumer package) lets handler tests
// inject mocks without touching the database or service layer.

// TourServicer is satisfied by *service.TourService.
type TourServicer interface {
	List(ctx context.Context, userID string, filter domain.TourFilter) ([]domain.TourSummary, int64, error)
	Details(ctx context.Context, id int64, userID string) (domain.TourDetails, error)
	Create(ctx context.Context, input domain.TourInput, userID string) (domain.Tour, error)
	GetForEdit(ctx context.Context, id int64, userID string) (domain.TourEditForm, error)
	Edit(ctx context.Context, id int64, input domain.TourInput, userID string) error
	GetForDelete(ctx context.Context, id int64, userID string) (domain.TourDeleteView, error)
	Delete(ctx context.Context, id int64, userID string) error
	Save(ctx context.Context, tourID int64, userID string) error
	RemoveFavorite(ctx context.Context, tourID int64, userID string) error
	Favorites(ctx context.Context, userID string) ([]domain.FavoriteTour, error)
	IsSaved(ctx context.Context, tourID int64, userID string) (bool, error)
}

// BookingServicer is satisfied by *service.BookingService.
type BookingServicer interface {
	Create(ctx context.Context, booking domain.Booking, userID string) (domain.Booking, error)
	Delete(ctx context.Context, id int64, userID string) (bool, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Booking, error)
}

// ReviewServicer is satisfied by *service.ReviewService.
type ReviewServicer interface {
	ListForTour(ctx context.Context, tourID int64) ([]domain.ReviewView, error)
	Add(ctx context.Context, tourID int64, userID, comment string) (domain.Review, error)
	CanReview(ctx context.Context, tourID int64, userID string) (bool, error)
}

// GuideServicer is satisfied by *service.TourGuideService.
type GuideServicer interface {
	ForTour(ctx context.Context, tourID int64) (domain.TourGuide, error)
	ByID(ctx context.Context, id int64) (domain.TourGuide, error)
	Add(ctx context.Context, guide domain.TourGuide) (domain.TourGuide, error)
}

// CategoryServicer is satisfied by *service.CategoryService.
type CategoryServicer interface {
	List(ctx context.Context) ([]domain.Category, error)
}

// UserServicer is satisfied by *service.UserService.
type UserServicer interface {
	ManagementBoard(ctx context.Context, callerID string) ([]domain.UserWithRoles, error)
	AssignRole(ctx context.Context, a domain.RoleAssignment) (bool, error)
}

// AccountServicer is satisfied by *service.AccountService.
type AccountServicer interface {
	Register(ctx context.Context, c domain.Credentials) (domain.User, error)
	Login(ctx context.Context, c domain.Credentials) (string, error)
}

// Services bundles every dependency of Server. Tests may leave fields nil
// when the routes under test never reach them.
type Services struct {
	Tours      TourServicer
	Bookings   BookingServicer
	Reviews    ReviewServicer
	Guides     GuideServicer
	Categories CategoryServicer
	Users      UserServicer
	Accounts   AccountServicer
}

// Server holds the dependencies shared by all handlers.
type Server struct {
	svc    Services
	logger *slog.Logger
}

// NewServer constructs the Server. A nil logger falls back to slog.Default().
func NewServer(svc Services, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{svc: svc, logger: logger}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tahiratravels/backend/internal/auth"
	"github.com/tahiratravels/backend/internal/domain"
	"github.com/tahiratravels/backend/internal/repo"
)

// sampleTours are inserted, authored by the administrator, into an empty catalogue.
var sampleTours = []domain.Tour{
	{
		Name:        "Sunny Beach",
		Description: "A beautiful beach with golden sands and clear waters.",
		ImageURL:    "https://sunnybeach-guide.com/wp-content/uploads/2024/03/sunny-beach-main-2.jpg",
		CategoryID:  1,
	},
	{
		Name:        "Musala",
		Description: "A breathtaking mountain peak with stunning views.",
		ImageURL:    "https://www.thetraveler.bg/wp-content/uploads/2021/01/Musala-6.jpg",
		CategoryID:  2,
	},
	{
		Name:        "Sofia City",
		Description: "A vibrant city with a bustling nightlife. The Capital!",
		ImageURL:    "https://endurotourssofia.com/wp-content/uploads/sofia.webp",
		CategoryID:  3,
	},
}

// Seeder creates the administrator account and the sample catalogue on startup.
// Every step is idempotent so it can run on each boot.
type Seeder struct {
	users  repo.UserRepo
	tours  repo.TourRepo
	logger *slog.Logger
	now    func() time.Time
}

// NewSeeder constructs a Seeder.
func NewSeeder(users repo.UserRepo, tours repo.TourRepo, logger *slog.Logger) *Seeder {
	return &Seeder{users: users, tours: tours, logger: logger, now: time.Now}
}

// Run ensures an administrator with the given e-mail exists and is in the
// Admin role, then adds the sample tours if there are no tours at all.
// Nothing is seeded when password is empty.
func (s *Seeder) Run(ctx context.Context, email, password string) error {
	if password == "" {
		s.logger.Info("admin password not configured; skipping seed")
		return nil
	}

	admin, err := s.ensureAdmin(ctx, email, password)
	if err != nil {
		return fmt.Errorf("service.Seeder.Run: %w", err)
	}

	n, err := s.tours.Count(ctx)
	if err != nil {
		return fmt.Errorf("service.Seeder.Run: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, t := range sampleTours {
		t.AuthorID = admin.ID
		t.CreatedOn = s.now().UTC()
		if _, err := s.tours.Create(ctx, t); err != nil {
			return fmt.Errorf("service.Seeder.Run: sample %q: %w", t.Name, err)
		}
	}
	s.logger.Info("seeded sample tours", "count", len(sampleTours))
	return nil
}

func (s *Seeder) ensureAdmin(ctx context.Context, email, password string) (domain.User, error) {
	email = domain.NormalizeEmail(email)
	admin, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		hash, err := auth.HashPassword(password)
		if err != nil {
			return domain.User{}, err
		}
		admin, err = s.users.Create(ctx, domain.User{
			ID:           uuid.NewString(),
			UserName:     email,
			Email:        email,
			PasswordHash: hash,
		})
		if err != nil {
			return domain.User{}, err
		}
		s.logger.Info("created admin user", "email", email)
	default:
		return domain.User{}, err
	}

	if err := s.users.AddToRole(ctx, admin.ID, domain.RoleAdmin); err != nil {
		return domain.User{}, err
	}
	return admin, nil
}

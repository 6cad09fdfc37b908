package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tahiratravels/backend/internal/domain"
)

// GuideRepo defines the persistence operations for tour guides.
type GuideRepo interface {
	// Create inserts a guide and returns it with its generated id.
	Create(ctx context.Context, guide domain.TourGuide) (domain.TourGuide, error)

	// GetByID retrieves a guide by primary key.
	// Returns domain.ErrNotFound if no guide with that id exists.
	GetByID(ctx context.Context, id int64) (domain.TourGuide, error)

	// FirstForTour returns the lowest-id guide attached to tourID.
	// Returns domain.ErrNotFound if the tour has no guide.
	FirstForTour(ctx context.Context, tourID int64) (domain.TourGuide, error)
}

// pgGuideRepo is the Postgres implementation of GuideRepo.
type pgGuideRepo struct {
	db db
}

// NewGuideRepo constructs a GuideRepo backed by the provided db connection.
func NewGuideRepo(db db) GuideRepo {
	return &pgGuideRepo{db: db}
}

const guideColumns = `id, name, age, location, languages, experience_years, tour_id`

// activeGuides restricts reads to guides whose tour has not been deleted.
const activeGuides = `
	SELECT g.id, g.name, g.age, g.location, g.languages, g.experience_years, g.tour_id
	FROM tour_guides g
	JOIN destinations d ON d.id = g.tour_id AND d.state = 'active'`

func (r *pgGuideRepo) Create(ctx context.Context, guide domain.TourGuide) (domain.TourGuide, error) {
	const q = `
		INSERT INTO tour_guides (name, age, location, languages, experience_years, tour_id)
		VALUES (@name, @age, @location, @languages, @experience_years, @tour_id)
		RETURNING ` + guideColumns

	args := pgx.NamedArgs{
		"name":             guide.Name,
		"age":              guide.Age,
		"location":         guide.Location,
		"languages":        guide.Languages,
		"experience_years": guide.ExperienceYears,
		"tour_id":          guide.TourID,
	}

	result, err := scanGuide(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.TourGuide{}, fmt.Errorf("repo.GuideRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgGuideRepo) GetByID(ctx context.Context, id int64) (domain.TourGuide, error) {
	const q = activeGuides + ` WHERE g.id = @id`

	result, err := scanGuide(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.TourGuide{}, fmt.Errorf("repo.GuideRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgGuideRepo) FirstForTour(ctx context.Context, tourID int64) (domain.TourGuide, error) {
	const q = activeGuides + ` WHERE g.tour_id = @tour_id ORDER BY g.id LIMIT 1`

	result, err := scanGuide(r.db.QueryRow(ctx, q, pgx.NamedArgs{"tour_id": tourID}))
	if err != nil {
		return domain.TourGuide{}, fmt.Errorf("repo.GuideRepo.FirstForTour: %w", err)
	}
	return result, nil
}

func scanGuide(s scanner) (domain.TourGuide, error) {
	var g domain.TourGuide
	err := s.Scan(&g.ID, &g.Name, &g.Age, &g.Location, &g.Languages, &g.ExperienceYears, &g.TourID)
	if err != nil {
		return domain.TourGuide{}, notFound(err)
	}
	return g, nil
}

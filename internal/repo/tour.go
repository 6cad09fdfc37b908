package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tahiratravels/backend/internal/domain"
)

// TourRepo defines the persistence operations for tours (the destinations table).
// Every read except Count ignores soft-deleted rows.
type TourRepo interface {
	// Create inserts a new active tour and returns it with its generated id.
	Create(ctx context.Context, tour domain.Tour) (domain.Tour, error)

	// GetActive retrieves an active tour with its author and category names.
	// Returns domain.ErrNotFound if the tour is absent or soft-deleted.
	GetActive(ctx context.Context, id int64) (domain.Tour, error)

	// GetOwned is GetActive restricted to tours authored by authorID.
	// A tour owned by someone else is reported as domain.ErrNotFound.
	GetOwned(ctx context.Context, id int64, authorID string) (domain.Tour, error)

	// List returns one page of active tours matching filter, annotated for
	// userID, together with the total number of matches.
	List(ctx context.Context, userID string, filter domain.TourFilter) ([]domain.TourSummary, int64, error)

	// Update overwrites the editable fields of an active tour owned by tour.AuthorID.
	// Returns domain.ErrNotFound if no such tour exists.
	Update(ctx context.Context, tour domain.Tour) error

	// SoftDelete marks an active tour owned by authorID as deleted.
	// Returns domain.ErrNotFound if no such tour exists.
	SoftDelete(ctx context.Context, id int64, authorID string) error

	// Count returns the number of tour rows in any state.
	Count(ctx context.Context) (int64, error)
}

// pgTourRepo is the Postgres implementation of TourRepo.
type pgTourRepo struct {
	db db
}

// NewTourRepo constructs a TourRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTourRepo(db db) TourRepo {
	return &pgTourRepo{db: db}
}

// tourSelect is shared by GetActive and GetOwned; callers append extra predicates.
const tourSelect = `
		SELECT d.id, d.name, d.description, d.image_url, d.author_id, u.user_name,
		       d.category_id, c.name, d.created_on, d.state
		FROM destinations d
		JOIN users u      ON u.id = d.author_id
		JOIN categories c ON c.id = d.category_id
		WHERE d.id = @id AND d.state = 'active'`

func (r *pgTourRepo) Create(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	const q = `
		INSERT INTO destinations (name, description, image_url, author_id, category_id, created_on)
		VALUES (@name, @description, @image_url, @author_id, @category_id, @created_on)
		RETURNING id, state`

	args := pgx.NamedArgs{
		"name":        tour.Name,
		"description": tour.Description,
		"image_url":   nullText(tour.ImageURL), // "" becomes NULL
		"author_id":   tour.AuthorID,
		"category_id": tour.CategoryID,
		"created_on":  tour.CreatedOn,
	}

	var state string
	if err := r.db.QueryRow(ctx, q, args).Scan(&tour.ID, &state); err != nil {
		return domain.Tour{}, fmt.Errorf("repo.TourRepo.Create: %w", err)
	}
	tour.State = domain.TourState(state)
	return tour, nil
}

func (r *pgTourRepo) GetActive(ctx context.Context, id int64) (domain.Tour, error) {
	row := r.db.QueryRow(ctx, tourSelect, pgx.NamedArgs{"id": id})
	tour, err := scanTour(row)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("repo.TourRepo.GetActive: %w", err)
	}
	return tour, nil
}

func (r *pgTourRepo) GetOwned(ctx context.Context, id int64, authorID string) (domain.Tour, error) {
	const q = tourSelect + ` AND d.author_id = @author_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "author_id": authorID})
	tour, err := scanTour(row)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("repo.TourRepo.GetOwned: %w", err)
	}
	return tour, nil
}

// List uses strpos on lowered strings rather than ILIKE so user input is never
// interpreted as a pattern.
func (r *pgTourRepo) List(ctx context.Context, userID string, filter domain.TourFilter) ([]domain.TourSummary, int64, error) {
	const where = `
		WHERE d.state = 'active'
		  AND (@search = '' OR strpos(lower(d.name), lower(@search)) > 0)`

	const countQ = `SELECT count(*) FROM destinations d` + where

	const listQ = `
		SELECT d.id, d.name, c.name, d.image_url,
		       (SELECT count(*) FROM user_destinations ud WHERE ud.destination_id = d.id),
		       d.author_id = @user_id,
		       EXISTS (SELECT 1 FROM user_destinations ud
		               WHERE ud.destination_id = d.id AND ud.user_id = @user_id)
		FROM destinations d
		JOIN categories c ON c.id = d.category_id` + where + `
		ORDER BY d.id
		LIMIT @limit OFFSET @offset`

	args := pgx.NamedArgs{
		"search":  filter.Search,
		"user_id": userID,
		"limit":   filter.Page.Limit,
		"offset":  filter.Page.Offset(),
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQ, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TourRepo.List: count: %w", err)
	}

	rows, err := r.db.Query(ctx, listQ, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TourRepo.List: %w", err)
	}
	tours, err := collect(rows, scanTourSummary)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TourRepo.List: scan: %w", err)
	}
	return tours, total, nil
}

func (r *pgTourRepo) Update(ctx context.Context, tour domain.Tour) error {
	const q = `
		UPDATE destinations
		SET name        = @name,
		    description = @description,
		    image_url   = @image_url,
		    category_id = @category_id,
		    created_on  = @created_on
		WHERE id = @id AND author_id = @author_id AND state = 'active'`

	args := pgx.NamedArgs{
		"id":          tour.ID,
		"author_id":   tour.AuthorID,
		"name":        tour.Name,
		"description": tour.Description,
		"image_url":   nullText(tour.ImageURL),
		"category_id": tour.CategoryID,
		"created_on":  tour.CreatedOn,
	}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return fmt.Errorf("repo.TourRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TourRepo.Update: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgTourRepo) SoftDelete(ctx context.Context, id int64, authorID string) error {
	const q = `
		UPDATE destinations
		SET state = 'deleted'
		WHERE id = @id AND author_id = @author_id AND state = 'active'`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "author_id": authorID})
	if err != nil {
		return fmt.Errorf("repo.TourRepo.SoftDelete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TourRepo.SoftDelete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgTourRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM destinations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.TourRepo.Count: %w", err)
	}
	return n, nil
}

// scanTour maps a tourSelect row into a domain.Tour.
func scanTour(s scanner) (domain.Tour, error) {
	var (
		t        domain.Tour
		imageURL pgtype.Text
		state    string
	)
	err := s.Scan(&t.ID, &t.Name, &t.Description, &imageURL, &t.AuthorID, &t.AuthorName,
		&t.CategoryID, &t.CategoryName, &t.CreatedOn, &state)
	if err != nil {
		return domain.Tour{}, notFound(err)
	}
	t.ImageURL = imageURL.String
	t.State = domain.TourState(state)
	return t, nil
}

func scanTourSummary(s scanner) (domain.TourSummary, error) {
	var (
		t        domain.TourSummary
		imageURL pgtype.Text
	)
	if err := s.Scan(&t.ID, &t.Name, &t.Category, &imageURL, &t.SavedCount, &t.IsAuthor, &t.IsSaved); err != nil {
		return domain.TourSummary{}, err
	}
	t.ImageURL = imageURL.String
	return t, nil
}

package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tahiratravels/backend/internal/domain"
)

// CategoryRepo defines read access to the categories reference table.
type CategoryRepo interface {
	// List returns all categories ordered by id.
	List(ctx context.Context) ([]domain.Category, error)

	// Exists reports whether a category with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)
}

// pgCategoryRepo is the Postgres implementation of CategoryRepo.
type pgCategoryRepo struct {
	db db
}

// NewCategoryRepo constructs a CategoryRepo backed by the provided db connection.
func NewCategoryRepo(db db) CategoryRepo {
	return &pgCategoryRepo{db: db}
}

func (r *pgCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	const q = `SELECT id, name FROM categories ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CategoryRepo.List: %w", err)
	}
	categories, err := collect(rows, func(s scanner) (domain.Category, error) {
		var c domain.Category
		err := s.Scan(&c.ID, &c.Name)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("repo.CategoryRepo.List: scan: %w", err)
	}
	return categories, nil
}

func (r *pgCategoryRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM categories WHERE id = @id)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.CategoryRepo.Exists: %w", err)
	}
	return exists, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/tahiratravels/backend/internal/domain"
	"github.com/tahiratravels/backend/internal/repo"
)

// CategoryService exposes the read-only category list.
type CategoryService struct {
	categories repo.CategoryRepo
}

// NewCategoryService constructs a CategoryService backed by the provided repo.
func NewCategoryService(r repo.CategoryRepo) *CategoryService {
	return &CategoryService{categories: r}
}

// List returns every category ordered by id.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CategoryService.List: %w", err)
	}
	return categories, nil
}

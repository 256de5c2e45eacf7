package service

import (
	"context"
	"fmt"

	"little-lemon/internal/menu"
	"little-lemon/internal/model"
	"little-lemon/internal/repository"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	menuRepo repository.MenuRepository
	logger   zerolog.Logger
}

// NewMenuService creates a new menu query service.
func NewMenuService(menuRepo repository.MenuRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		logger:   logger.With().Str("service", "menu").Logger(),
	}
}

// GetAll retrieves every cached menu item.
func (s *menuService) GetAll(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.menuRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get menu items")
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}

	s.logger.Debug().Int("count", len(items)).Msg("retrieved menu items")
	return items, nil
}

// Filter retrieves items matching the query and active categories. An empty
// active set widens to the full category vocabulary, so no category is
// filtered out; the repository is never called with an empty set.
func (s *menuService) Filter(ctx context.Context, query string, activeCategories []string) ([]model.MenuItem, error) {
	effective := activeCategories
	if len(effective) == 0 {
		effective = menu.AllCategories()
	}

	items, err := s.menuRepo.GetFiltered(ctx, query, effective)
	if err != nil {
		s.logger.Error().Err(err).
			Str("query", query).
			Strs("categories", effective).
			Msg("failed to filter menu items")
		return nil, fmt.Errorf("failed to filter menu items: %w", err)
	}

	s.logger.Debug().
		Str("query", query).
		Strs("categories", effective).
		Int("count", len(items)).
		Msg("filtered menu items")

	return items, nil
}

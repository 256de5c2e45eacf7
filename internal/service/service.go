package service

import (
	"context"

	"little-lemon/internal/model"
)

// MenuService defines the query operations over the menu cache.
type MenuService interface {
	// GetAll retrieves every cached menu item.
	GetAll(ctx context.Context) ([]model.MenuItem, error)

	// Filter retrieves items matching a case-insensitive name substring and
	// a set of active categories. An empty set means no category filter.
	// Filter runs on every search or toggle change; callers driving it from
	// keystrokes are expected to debounce (the reference client uses 500ms).
	Filter(ctx context.Context, query string, activeCategories []string) ([]model.MenuItem, error)
}

// ProfileService defines operations over the stored user profile.
type ProfileService interface {
	// Get retrieves the stored profile.
	Get(ctx context.Context) (*model.Profile, error)

	// Save validates and stores the profile.
	Save(ctx context.Context, profile *model.Profile) error
}

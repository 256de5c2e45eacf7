package repository

import (
	"context"

	"little-lemon/internal/model"
)

// MenuRepository defines the interface for menu cache data access.
type MenuRepository interface {
	// EnsureSchema creates the menu_items table and its indexes if absent.
	// Safe to call on every start.
	EnsureSchema(ctx context.Context) error

	// Count returns the number of cached menu items.
	Count(ctx context.Context) (int64, error)

	// InsertAll writes the given items in a single transaction. Identifiers
	// are assigned by the store; any id on the input items is ignored.
	InsertAll(ctx context.Context, items []model.MenuItem) error

	// GetAll retrieves every cached menu item.
	GetAll(ctx context.Context) ([]model.MenuItem, error)

	// GetFiltered retrieves items whose name contains pattern
	// (case-insensitive) and whose category is in categories. Callers must
	// never pass an empty category set; widen to the full vocabulary first.
	GetFiltered(ctx context.Context, pattern string, categories []string) ([]model.MenuItem, error)
}

// ProfileRepository defines the interface for the single stored user profile.
type ProfileRepository interface {
	// EnsureSchema creates the user_profile table if absent.
	EnsureSchema(ctx context.Context) error

	// Get retrieves the stored profile, or nil when none has been saved.
	Get(ctx context.Context) (*model.Profile, error)

	// Upsert inserts or replaces the stored profile.
	Upsert(ctx context.Context, profile *model.Profile) error
}

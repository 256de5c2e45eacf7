package repository

import (
	"context"
	"fmt"
	"strings"

	"little-lemon/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const menuSchema = `
	CREATE TABLE IF NOT EXISTS menu_items (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		price       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image       TEXT NOT NULL DEFAULT '',
		category    TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_menu_items_category ON menu_items(category);
`

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

// EnsureSchema creates the menu_items table and index if they do not exist.
func (r *menuRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, menuSchema); err != nil {
		r.logger.Error().Err(err).Msg("failed to ensure menu schema")
		return fmt.Errorf("failed to ensure menu schema: %w", err)
	}
	return nil
}

// Count returns the number of cached menu items.
func (r *menuRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count menu items")
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	return count, nil
}

// InsertAll writes all items inside one transaction so the cache is either
// empty or fully seeded; a failure on any row rolls back the whole batch.
func (r *menuRepository) InsertAll(ctx context.Context, items []model.MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin insert transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO menu_items (name, price, description, image, category)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, item := range items {
		_, err := tx.Exec(ctx, query, item.Name, item.Price, item.Description, item.Image, item.Category)
		if err != nil {
			r.logger.Error().Err(err).
				Str("name", item.Name).
				Str("category", item.Category).
				Msg("failed to insert menu item")
			return fmt.Errorf("failed to insert menu item %q: %w", item.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit insert transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info().Int("count", len(items)).Msg("menu items inserted")
	return nil
}

// GetAll retrieves every cached menu item.
func (r *menuRepository) GetAll(ctx context.Context) ([]model.MenuItem, error) {
	query := `
		SELECT id, name, price, description, image, category
		FROM menu_items
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Description, &item.Image, &item.Category)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// GetFiltered retrieves items by case-insensitive name substring and
// category membership. Both predicates use bound arguments.
func (r *menuRepository) GetFiltered(ctx context.Context, pattern string, categories []string) ([]model.MenuItem, error) {
	query := `
		SELECT id, name, price, description, image, category
		FROM menu_items
		WHERE name ILIKE '%' || $1 || '%' AND category = ANY($2)
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, escapeLike(pattern), categories)
	if err != nil {
		r.logger.Error().Err(err).
			Str("pattern", pattern).
			Strs("categories", categories).
			Msg("failed to query filtered menu items")
		return nil, fmt.Errorf("failed to query filtered menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Description, &item.Image, &item.Category)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// escapeLike escapes LIKE metacharacters so user input is matched literally.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

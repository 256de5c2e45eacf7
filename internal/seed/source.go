package seed

import (
	"context"
	"fmt"
	"strconv"

	"little-lemon/internal/model"

	"github.com/rs/zerolog"
)

// Source supplies the menu used to seed an empty cache.
type Source interface {
	// Fetch retrieves the full menu. A returned error means nothing was
	// seeded; the caller decides whether to fall back or give up.
	Fetch(ctx context.Context) ([]model.MenuItem, error)
}

// remotePayload is the wire shape of the menu source:
// { "menu": [ { name, price, description, image, category }, ... ] }.
type remotePayload struct {
	Menu []remoteItem `json:"menu"`
}

type remoteItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

// toMenuItems converts wire entries to cache rows, turning the numeric
// price into its exact string form. Identifiers are left to the store.
func toMenuItems(payload *remotePayload) ([]model.MenuItem, error) {
	if len(payload.Menu) == 0 {
		return nil, fmt.Errorf("menu payload contains no items")
	}

	items := make([]model.MenuItem, 0, len(payload.Menu))
	for i, entry := range payload.Menu {
		if entry.Name == "" {
			return nil, fmt.Errorf("menu entry %d has no name", i)
		}
		if entry.Category == "" {
			return nil, fmt.Errorf("menu entry %d (%s) has no category", i, entry.Name)
		}
		items = append(items, model.MenuItem{
			Name:        entry.Name,
			Price:       strconv.FormatFloat(entry.Price, 'f', -1, 64),
			Description: entry.Description,
			Image:       entry.Image,
			Category:    entry.Category,
		})
	}
	return items, nil
}

// fallbackSource tries a primary source and falls back to a secondary one
// when the primary fails.
type fallbackSource struct {
	primary  Source
	fallback Source
	logger   zerolog.Logger
}

// NewFallbackSource chains two sources, preferring the primary.
func NewFallbackSource(primary, fallback Source, logger zerolog.Logger) Source {
	return &fallbackSource{
		primary:  primary,
		fallback: fallback,
		logger:   logger.With().Str("component", "menu-source").Logger(),
	}
}

// Fetch returns the primary result, or the fallback result when the primary
// fails. Both failing returns the fallback's error.
func (s *fallbackSource) Fetch(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.primary.Fetch(ctx)
	if err == nil {
		return items, nil
	}

	s.logger.Warn().Err(err).Msg("primary menu source failed, trying fallback")
	return s.fallback.Fetch(ctx)
}

package seed

import (
	"context"
	"fmt"

	"little-lemon/internal/repository"

	"github.com/rs/zerolog"
)

// Seeder populates the menu cache from a Source exactly once. The emptiness
// of the cache is the only guard: a non-empty cache is never touched, so
// running the seeder on every start is safe.
type Seeder struct {
	repo   repository.MenuRepository
	source Source
	logger zerolog.Logger
}

// NewSeeder creates a seeder over the given repository and menu source.
func NewSeeder(repo repository.MenuRepository, source Source, logger zerolog.Logger) *Seeder {
	return &Seeder{
		repo:   repo,
		source: source,
		logger: logger.With().Str("component", "seeder").Logger(),
	}
}

// Run ensures the schema exists and seeds the cache when it is empty.
// A failed fetch leaves the cache empty; the next start retries.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("seeder: %w", err)
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("seeder: %w", err)
	}
	if count > 0 {
		s.logger.Debug().Int64("count", count).Msg("menu cache already seeded")
		return nil
	}

	items, err := s.source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("seeder: %w", err)
	}

	if err := s.repo.InsertAll(ctx, items); err != nil {
		return fmt.Errorf("seeder: %w", err)
	}

	s.logger.Info().Int("count", len(items)).Msg("menu cache seeded")
	return nil
}

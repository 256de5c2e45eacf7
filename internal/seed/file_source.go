package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"little-lemon/internal/model"

	"github.com/rs/zerolog"
)

// fileSource implements Source for a local JSON file with the same payload
// shape as the remote endpoint. Used as a fallback when the remote is down.
type fileSource struct {
	path   string
	logger zerolog.Logger
}

// NewFileSource creates a Source that reads the menu from a local file.
func NewFileSource(path string, logger zerolog.Logger) Source {
	return &fileSource{
		path:   path,
		logger: logger.With().Str("component", "file-source").Logger(),
	}
}

// Fetch reads and decodes the menu file.
func (s *fileSource) Fetch(ctx context.Context) ([]model.MenuItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to read menu file")
		return nil, fmt.Errorf("failed to read menu file %s: %w", s.path, err)
	}

	var payload remotePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to decode menu file")
		return nil, fmt.Errorf("failed to decode menu file %s: %w", s.path, err)
	}

	items, err := toMenuItems(&payload)
	if err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("menu file is malformed")
		return nil, fmt.Errorf("malformed menu file %s: %w", s.path, err)
	}

	s.logger.Info().
		Str("file", s.path).
		Int("count", len(items)).
		Msg("menu loaded from fallback file")
	return items, nil
}

package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"little-lemon/internal/model"

	"github.com/rs/zerolog"
)

// httpSource implements Source against the remote menu endpoint.
type httpSource struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

// NewHTTPSource creates a Source that fetches the menu JSON from url.
func NewHTTPSource(url string, timeout time.Duration, logger zerolog.Logger) Source {
	return &httpSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger.With().Str("component", "http-source").Logger(),
	}
}

// Fetch performs a GET against the configured URL and decodes the menu.
// Non-2xx responses and malformed payloads are both fetch failures.
func (s *httpSource) Fetch(ctx context.Context) ([]model.MenuItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build menu request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Str("url", s.url).Msg("menu fetch failed")
		return nil, fmt.Errorf("failed to fetch menu: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Error().
			Int("status", resp.StatusCode).
			Str("url", s.url).
			Msg("menu fetch returned non-2xx status")
		return nil, fmt.Errorf("menu fetch returned status %d", resp.StatusCode)
	}

	var payload remotePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		s.logger.Error().Err(err).Str("url", s.url).Msg("failed to decode menu payload")
		return nil, fmt.Errorf("failed to decode menu payload: %w", err)
	}

	items, err := toMenuItems(&payload)
	if err != nil {
		s.logger.Error().Err(err).Str("url", s.url).Msg("menu payload is malformed")
		return nil, fmt.Errorf("malformed menu payload: %w", err)
	}

	s.logger.Info().Int("count", len(items)).Msg("menu fetched from remote source")
	return items, nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"little-lemon/internal/model"
	"little-lemon/internal/repository"

	"github.com/rs/zerolog"
)

// profileService implements ProfileService.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      zerolog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo repository.ProfileRepository, logger zerolog.Logger) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger.With().Str("service", "profile").Logger(),
	}
}

// Get retrieves the stored profile.
func (s *profileService) Get(ctx context.Context) (*model.Profile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get profile")
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile == nil {
		s.logger.Debug().Msg("profile not found")
		return nil, model.ErrProfileNotFound
	}

	return profile, nil
}

// Save validates and stores the profile. First name and email are required.
func (s *profileService) Save(ctx context.Context, profile *model.Profile) error {
	if strings.TrimSpace(profile.FirstName) == "" {
		s.logger.Warn().Msg("profile rejected: first name is empty")
		return model.ErrMissingFirstName
	}

	if strings.TrimSpace(profile.Email) == "" {
		s.logger.Warn().Msg("profile rejected: email is empty")
		return model.ErrMissingEmail
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		s.logger.Error().Err(err).Msg("failed to save profile")
		return fmt.Errorf("failed to save profile: %w", err)
	}

	s.logger.Info().Str("email", profile.Email).Msg("profile saved")
	return nil
}

package repository

import (
	"context"
	"fmt"

	"little-lemon/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// The profile table holds at most one row, pinned to id 1.
const profileSchema = `
	CREATE TABLE IF NOT EXISTS user_profile (
		id               INTEGER PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		first_name       TEXT NOT NULL,
		last_name        TEXT NOT NULL DEFAULT '',
		email            TEXT NOT NULL,
		phone            TEXT NOT NULL DEFAULT '',
		avatar           TEXT NOT NULL DEFAULT '',
		order_statuses   BOOLEAN NOT NULL DEFAULT TRUE,
		password_changes BOOLEAN NOT NULL DEFAULT TRUE,
		special_offers   BOOLEAN NOT NULL DEFAULT FALSE,
		newsletter       BOOLEAN NOT NULL DEFAULT FALSE
	);
`

// profileRepository implements the ProfileRepository interface using PostgreSQL.
type profileRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProfileRepository creates a new PostgreSQL-backed profile repository.
func NewProfileRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProfileRepository {
	return &profileRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "profile").Logger(),
	}
}

// EnsureSchema creates the user_profile table if it does not exist.
func (r *profileRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, profileSchema); err != nil {
		r.logger.Error().Err(err).Msg("failed to ensure profile schema")
		return fmt.Errorf("failed to ensure profile schema: %w", err)
	}
	return nil
}

// Get retrieves the stored profile, or nil when none has been saved.
func (r *profileRepository) Get(ctx context.Context) (*model.Profile, error) {
	query := `
		SELECT first_name, last_name, email, phone, avatar,
		       order_statuses, password_changes, special_offers, newsletter
		FROM user_profile
		WHERE id = 1
	`

	var p model.Profile
	err := r.pool.QueryRow(ctx, query).Scan(
		&p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.Avatar,
		&p.OrderStatuses, &p.PasswordChanges, &p.SpecialOffers, &p.Newsletter,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Msg("no profile saved yet")
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query profile")
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	return &p, nil
}

// Upsert inserts or replaces the stored profile.
func (r *profileRepository) Upsert(ctx context.Context, profile *model.Profile) error {
	query := `
		INSERT INTO user_profile (
			id, first_name, last_name, email, phone, avatar,
			order_statuses, password_changes, special_offers, newsletter
		)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			first_name       = EXCLUDED.first_name,
			last_name        = EXCLUDED.last_name,
			email            = EXCLUDED.email,
			phone            = EXCLUDED.phone,
			avatar           = EXCLUDED.avatar,
			order_statuses   = EXCLUDED.order_statuses,
			password_changes = EXCLUDED.password_changes,
			special_offers   = EXCLUDED.special_offers,
			newsletter       = EXCLUDED.newsletter
	`

	_, err := r.pool.Exec(ctx, query,
		profile.FirstName, profile.LastName, profile.Email, profile.Phone, profile.Avatar,
		profile.OrderStatuses, profile.PasswordChanges, profile.SpecialOffers, profile.Newsletter,
	)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to upsert profile")
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}

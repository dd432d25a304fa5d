package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation of ProfileRepository.
func NewProfileRepository(pool *pgxpool.Pool) repository.ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) GetByUser(ctx context.Context, userID string) (*domain.Profile, error) {
	const query = `
	SELECT id, user_id, display_name, bio, photo_key, created_at, updated_at
	FROM user_profiles
	WHERE user_id = $1
	`
	var profile domain.Profile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.DisplayName,
		&profile.Bio,
		&profile.PhotoKey,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if profile == nil {
		return domain.ErrInvalidPayload
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO user_profiles (id, user_id, display_name, bio, photo_key)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.UserID,
		profile.DisplayName,
		profile.Bio,
		profile.PhotoKey,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if uniqueViolation(err, "user_profiles_user_id") {
			return domain.NewError(domain.ErrCodeConflict, "profile already exists for this user")
		}
		return err
	}
	return nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	if profile == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE user_profiles
	SET display_name = $2,
		bio = $3,
		photo_key = $4,
		updated_at = NOW()
	WHERE user_id = $1
	RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		profile.UserID,
		profile.DisplayName,
		profile.Bio,
		profile.PhotoKey,
	).Scan(&profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrProfileNotFound
		}
		return err
	}
	return nil
}

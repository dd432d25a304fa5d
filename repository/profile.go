package repository

import (
	"context"

	"github.com/taskdeck/backend/domain"
)

type ProfileRepository interface {
	GetByUser(ctx context.Context, userID string) (*domain.Profile, error)
	// Create inserts the profile; a second insert for the same user
	// surfaces as a conflict (unique user_id).
	Create(ctx context.Context, profile *domain.Profile) error
	Update(ctx context.Context, profile *domain.Profile) error
}

package repository

import (
	"context"

	"github.com/taskdeck/backend/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts a new user; duplicate username/email surfaces as
	// domain.ErrUsernameTaken / domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) error
	// UpdateIdentity persists email and name fields.
	UpdateIdentity(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// EmailTaken reports whether another user (excluding excludeID) already
	// holds the email.
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)
}

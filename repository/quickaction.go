package repository

import (
	"context"

	"github.com/taskdeck/backend/domain"
)

type QuickActionRepository interface {
	// ListByUser returns the user's actions ordered by (order, created_at).
	// With activeOnly set, inactive actions are skipped.
	ListByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.QuickAction, error)
	GetByID(ctx context.Context, userID, id string) (*domain.QuickAction, error)
	// Create inserts the action; a duplicate (user, label) pair surfaces as
	// domain.ErrDuplicateLabel.
	Create(ctx context.Context, action *domain.QuickAction) error
	Update(ctx context.Context, action *domain.QuickAction) error
	Delete(ctx context.Context, userID, id string) error
	// SetOrder updates the sort order of one owned action. It reports false
	// when the id does not exist or belongs to another user.
	SetOrder(ctx context.Context, userID, id string, order int) (bool, error)
}

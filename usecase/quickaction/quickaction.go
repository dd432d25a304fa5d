package quickaction

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

type UseCase struct {
	actions repository.QuickActionRepository
	logger  *zap.Logger
}

func New(actions repository.QuickActionRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		actions: actions,
		logger:  logger,
	}
}

// List returns the caller's active quick actions in dashboard order.
func (uc *UseCase) List(ctx context.Context, userID string) ([]domain.QuickAction, error) {
	return uc.actions.ListByUser(ctx, userID, true)
}

func (uc *UseCase) Get(ctx context.Context, userID, id string) (*domain.QuickAction, error) {
	return uc.actions.GetByID(ctx, userID, id)
}

// Create binds the action to the caller, validates and persists. A duplicate
// label for the same user surfaces as a conflict.
func (uc *UseCase) Create(ctx context.Context, userID string, action *domain.QuickAction) (*domain.QuickAction, error) {
	action.UserID = userID
	if action.ActionData == nil {
		action.ActionData = map[string]any{}
	}
	if err := action.Validate(); err != nil {
		return nil, err
	}
	if err := uc.actions.Create(ctx, action); err != nil {
		return nil, err
	}
	return action, nil
}

// Patch carries partial quick-action changes; nil fields are left unchanged.
type Patch struct {
	Label      *string
	Icon       *string
	ActionType *string
	ActionData map[string]any
	Order      *int
	IsActive   *bool
}

func (uc *UseCase) Update(ctx context.Context, userID, id string, patch Patch) (*domain.QuickAction, error) {
	action, err := uc.actions.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Label != nil {
		action.Label = *patch.Label
	}
	if patch.Icon != nil {
		action.Icon = *patch.Icon
	}
	if patch.ActionType != nil {
		action.ActionType = *patch.ActionType
	}
	if patch.ActionData != nil {
		action.ActionData = patch.ActionData
	}
	if patch.Order != nil {
		action.Order = *patch.Order
	}
	if patch.IsActive != nil {
		action.IsActive = *patch.IsActive
	}

	if err := action.Validate(); err != nil {
		return nil, err
	}
	if err := uc.actions.Update(ctx, action); err != nil {
		return nil, err
	}
	return action, nil
}

func (uc *UseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.actions.Delete(ctx, userID, id)
}

// ReorderItem pairs a quick-action id with its new sort position.
type ReorderItem struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// Reorder updates the sort order of each owned action in the list. Ids that
// do not exist or belong to another user are silently skipped; this is a
// deliberate partial-success policy.
func (uc *UseCase) Reorder(ctx context.Context, userID string, items []ReorderItem) error {
	for _, item := range items {
		updated, err := uc.actions.SetOrder(ctx, userID, item.ID, item.Order)
		if err != nil {
			return err
		}
		if !updated {
			uc.logger.Debug("reorder skipped unknown quick action",
				zap.String("user_id", userID), zap.String("id", item.ID))
		}
	}
	return nil
}

// BulkCreate creates every payload that validates, skipping invalid entries
// and duplicate labels instead of failing the batch. The created actions are
// returned in input order.
func (uc *UseCase) BulkCreate(ctx context.Context, userID string, payloads []domain.QuickAction) ([]domain.QuickAction, error) {
	created := make([]domain.QuickAction, 0, len(payloads))
	for _, payload := range payloads {
		payload.UserID = userID
		if payload.ActionData == nil {
			payload.ActionData = map[string]any{}
		}
		if err := payload.Validate(); err != nil {
			continue
		}
		if err := uc.actions.Create(ctx, &payload); err != nil {
			if errors.Is(err, domain.ErrDuplicateLabel) {
				continue
			}
			return nil, err
		}
		created = append(created, payload)
	}
	return created, nil
}

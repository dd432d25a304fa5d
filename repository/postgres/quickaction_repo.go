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

type quickActionRepository struct {
	pool *pgxpool.Pool
}

// NewQuickActionRepository returns a Postgres-backed implementation of QuickActionRepository.
func NewQuickActionRepository(pool *pgxpool.Pool) repository.QuickActionRepository {
	return &quickActionRepository{pool: pool}
}

const quickActionColumns = `id, user_id, label, icon, action_type, action_data, sort_order, is_active, created_at`

func (r *quickActionRepository) ListByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.QuickAction, error) {
	const query = `
	SELECT ` + quickActionColumns + `
	FROM quick_actions
	WHERE user_id = $1
	  AND (NOT $2 OR is_active)
	ORDER BY sort_order, created_at
	`
	rows, err := r.pool.Query(ctx, query, userID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []domain.QuickAction
	for rows.Next() {
		action, err := scanQuickAction(rows)
		if err != nil {
			return nil, err
		}
		actions = append(actions, *action)
	}
	return actions, rows.Err()
}

func (r *quickActionRepository) GetByID(ctx context.Context, userID, id string) (*domain.QuickAction, error) {
	const query = `
	SELECT ` + quickActionColumns + `
	FROM quick_actions
	WHERE id = $1 AND user_id = $2
	`
	return scanQuickAction(r.pool.QueryRow(ctx, query, id, userID))
}

func (r *quickActionRepository) Create(ctx context.Context, action *domain.QuickAction) error {
	if action == nil {
		return domain.ErrInvalidPayload
	}
	if action.ID == "" {
		action.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO quick_actions (id, user_id, label, icon, action_type, action_data, sort_order, is_active)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING created_at
	`
	err := r.pool.QueryRow(ctx, query,
		action.ID,
		action.UserID,
		action.Label,
		action.Icon,
		action.ActionType,
		marshalActionData(action.ActionData),
		action.Order,
		action.IsActive,
	).Scan(&action.CreatedAt)
	if err != nil {
		if uniqueViolation(err, "quick_actions_user_id_label") {
			return domain.ErrDuplicateLabel
		}
		return err
	}
	return nil
}

func (r *quickActionRepository) Update(ctx context.Context, action *domain.QuickAction) error {
	if action == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE quick_actions
	SET label = $3,
		icon = $4,
		action_type = $5,
		action_data = $6,
		sort_order = $7,
		is_active = $8
	WHERE id = $1 AND user_id = $2
	`
	tag, err := r.pool.Exec(ctx, query,
		action.ID,
		action.UserID,
		action.Label,
		action.Icon,
		action.ActionType,
		marshalActionData(action.ActionData),
		action.Order,
		action.IsActive,
	)
	if err != nil {
		if uniqueViolation(err, "quick_actions_user_id_label") {
			return domain.ErrDuplicateLabel
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuickActionNotFound
	}
	return nil
}

func (r *quickActionRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM quick_actions WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuickActionNotFound
	}
	return nil
}

func (r *quickActionRepository) SetOrder(ctx context.Context, userID, id string, order int) (bool, error) {
	const query = `UPDATE quick_actions SET sort_order = $3 WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID, order)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanQuickAction(row pgx.Row) (*domain.QuickAction, error) {
	var action domain.QuickAction
	var data []byte

	err := row.Scan(
		&action.ID,
		&action.UserID,
		&action.Label,
		&action.Icon,
		&action.ActionType,
		&data,
		&action.Order,
		&action.IsActive,
		&action.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuickActionNotFound
		}
		return nil, err
	}

	action.ActionData = unmarshalActionData(data)
	return &action, nil
}

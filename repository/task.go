package repository

import (
	"context"

	"github.com/taskdeck/backend/domain"
)

// TaskFilter narrows a task listing. UserID is mandatory on every read: the
// owner predicate is injected here, centrally, rather than per endpoint.
type TaskFilter struct {
	UserID   string
	Status   string
	Priority string
	Category string

	// DueOn matches a single day; DueBefore is exclusive; DueFrom/DueTo is
	// an inclusive range. At most one of the three forms is set.
	DueOn     *domain.Date
	DueBefore *domain.Date
	DueFrom   *domain.Date
	DueTo     *domain.Date

	// OpenOnly restricts to pending/in_progress statuses.
	OpenOnly bool

	Limit  int
	Offset int
}

// DashboardCounts carries the raw per-user aggregates; productivity is
// derived from these in the domain layer.
type DashboardCounts struct {
	Total           int
	Completed       int
	InProgress      int
	Overdue         int
	HighPriority    int
	RecentCompleted int
}

type TaskRepository interface {
	GetByID(ctx context.Context, userID, id string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, userID, id string) error
	DashboardCounts(ctx context.Context, userID string, today domain.Date) (*DashboardCounts, error)
}

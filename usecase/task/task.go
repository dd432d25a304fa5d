package task

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

// ListParams narrows the plain task listing.
type ListParams struct {
	Status string
	Limit  int
	Offset int
}

func (uc *UseCase) List(ctx context.Context, userID string, params ListParams) ([]domain.Task, error) {
	return uc.tasks.List(ctx, repository.TaskFilter{
		UserID: userID,
		Status: params.Status,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}

func (uc *UseCase) Get(ctx context.Context, userID, id string) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, userID, id)
}

// Create binds the task to the caller, fills enum defaults, validates and
// persists. Any user id supplied by the client is discarded.
func (uc *UseCase) Create(ctx context.Context, userID string, task *domain.Task) (*domain.Task, error) {
	task.UserID = userID
	task.ApplyDefaults()
	if err := task.Validate(); err != nil {
		return nil, err
	}
	return uc.tasks.Create(ctx, task)
}

// Patch carries partial task changes. Nil fields are left unchanged;
// DueDateSet distinguishes "clear the due date" from "leave it".
type Patch struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	Category    *string
	DueDate     *domain.Date
	DueDateSet  bool
}

// Update loads the owned task, applies the patch, validates and persists.
func (uc *UseCase) Update(ctx context.Context, userID, id string, patch Patch) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}
	if patch.DueDateSet {
		task.DueDate = patch.DueDate
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}
	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (uc *UseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.tasks.Delete(ctx, userID, id)
}

// DashboardStats computes the caller's aggregates fresh on every call.
func (uc *UseCase) DashboardStats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	counts, err := uc.tasks.DashboardCounts(ctx, userID, domain.Today())
	if err != nil {
		return nil, err
	}
	return &domain.DashboardStats{
		TotalTasks:      counts.Total,
		CompletedTasks:  counts.Completed,
		InProgressTasks: counts.InProgress,
		OverdueTasks:    counts.Overdue,
		Productivity:    domain.ProductivityPercent(counts.Completed, counts.Total),
		HighPriority:    counts.HighPriority,
		RecentCompleted: counts.RecentCompleted,
	}, nil
}

// FilterTasks applies one of the named filter predicates to the caller's
// tasks.
func (uc *UseCase) FilterTasks(ctx context.Context, userID, filterType, filterValue string) ([]domain.Task, error) {
	filter := ResolveFilter(userID, filterType, filterValue, domain.Today())
	return uc.tasks.List(ctx, filter)
}

// ResolveFilter translates a (filter_type, filter_value) pair into a
// repository filter. An unrecognized filter_type, or an unrecognized
// due_date value, falls through to the unfiltered owner scope; the legacy
// API treated that as "return everything" and clients depend on it.
func ResolveFilter(userID, filterType, filterValue string, today domain.Date) repository.TaskFilter {
	filter := repository.TaskFilter{UserID: userID}

	switch filterType {
	case "due_date":
		switch filterValue {
		case "today":
			d := today
			filter.DueOn = &d
		case "overdue":
			d := today
			filter.DueBefore = &d
			filter.OpenOnly = true
		case "this_week":
			from := today
			to := today.AddDays(7)
			filter.DueFrom = &from
			filter.DueTo = &to
		}
	case "priority":
		filter.Priority = filterValue
	case "status":
		filter.Status = filterValue
	case "category":
		filter.Category = filterValue
	}

	return filter
}

package domain

import (
	"strings"
	"time"
)

// Task statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task categories.
const (
	CategoryWork      = "work"
	CategoryPersonal  = "personal"
	CategoryHealth    = "health"
	CategoryEducation = "education"
	CategoryShopping  = "shopping"
	CategoryOther     = "other"
)

var (
	validStatuses   = map[string]bool{StatusPending: true, StatusInProgress: true, StatusCompleted: true}
	validPriorities = map[string]bool{PriorityLow: true, PriorityMedium: true, PriorityHigh: true}
	validCategories = map[string]bool{
		CategoryWork: true, CategoryPersonal: true, CategoryHealth: true,
		CategoryEducation: true, CategoryShopping: true, CategoryOther: true,
	}
)

// OpenStatuses are the statuses a task counts as still actionable in.
var OpenStatuses = []string{StatusPending, StatusInProgress}

const maxTitleLen = 200

// Task represents a user-owned activity item. UserID is always bound to the
// authenticated caller server-side; it is never taken from client input.
type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	DueDate     *Date     `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ApplyDefaults fills the enum fields that were left empty.
func (t *Task) ApplyDefaults() {
	if t.Status == "" {
		t.Status = StatusPending
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.Category == "" {
		t.Category = CategoryOther
	}
}

// Validate checks field constraints after defaults have been applied.
func (t *Task) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(t.Title) == "" {
		errs.Add("title", "this field is required")
	} else if len(t.Title) > maxTitleLen {
		errs.Add("title", "ensure this field has no more than 200 characters")
	}
	if !validStatuses[t.Status] {
		errs.Add("status", `"`+t.Status+`" is not a valid choice`)
	}
	if !validPriorities[t.Priority] {
		errs.Add("priority", `"`+t.Priority+`" is not a valid choice`)
	}
	if !validCategories[t.Category] {
		errs.Add("category", `"`+t.Category+`" is not a valid choice`)
	}
	return errs.Err()
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == StatusCompleted
}

// IsOverdue reports whether the task is past due and still open. Completed
// tasks are never overdue, regardless of their due date.
func (t *Task) IsOverdue(today Date) bool {
	if t == nil || t.DueDate == nil || t.IsCompleted() {
		return false
	}
	return t.DueDate.Before(today.Time)
}

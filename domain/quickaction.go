package domain

import (
	"strings"
	"time"
)

// Quick action types the dashboard understands. ActionType is an open tag:
// unknown values are stored as-is so new frontend behaviors need no backend
// change.
const (
	ActionTypeFilter   = "filter"
	ActionTypeModal    = "modal"
	ActionTypeRedirect = "redirect"
)

const (
	maxLabelLen = 50
	maxIconLen  = 50
)

// QuickAction is a user-configurable dashboard shortcut. (UserID, Label) is
// unique per user.
type QuickAction struct {
	ID         string         `json:"id"`
	UserID     string         `json:"-"`
	Label      string         `json:"label"`
	Icon       string         `json:"icon"`
	ActionType string         `json:"action_type"`
	ActionData map[string]any `json:"action_data"`
	Order      int            `json:"order"`
	IsActive   bool           `json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Validate checks field constraints.
func (a *QuickAction) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(a.Label) == "" {
		errs.Add("label", "this field is required")
	} else if len(a.Label) > maxLabelLen {
		errs.Add("label", "ensure this field has no more than 50 characters")
	}
	if len(a.Icon) > maxIconLen {
		errs.Add("icon", "ensure this field has no more than 50 characters")
	}
	if strings.TrimSpace(a.ActionType) == "" {
		errs.Add("action_type", "this field is required")
	}
	if a.Order < 0 {
		errs.Add("order", "ensure this value is greater than or equal to 0")
	}
	return errs.Err()
}

// DefaultQuickActions returns the fixed shortcut set provisioned for every
// new user, in dashboard order.
func DefaultQuickActions(userID string) []QuickAction {
	return []QuickAction{
		{
			UserID:     userID,
			Label:      "Add Task",
			Icon:       "fas fa-plus",
			ActionType: ActionTypeModal,
			Order:      1,
			IsActive:   true,
		},
		{
			UserID:     userID,
			Label:      "Due Today",
			Icon:       "fas fa-clock",
			ActionType: ActionTypeFilter,
			ActionData: map[string]any{"filter_type": "due_date", "filter_value": "today"},
			Order:      2,
			IsActive:   true,
		},
		{
			UserID:     userID,
			Label:      "High Priority",
			Icon:       "fas fa-star",
			ActionType: ActionTypeFilter,
			ActionData: map[string]any{"filter_type": "priority", "filter_value": "high"},
			Order:      3,
			IsActive:   true,
		},
		{
			UserID:     userID,
			Label:      "Report",
			Icon:       "fas fa-chart-bar",
			ActionType: ActionTypeModal,
			Order:      4,
			IsActive:   true,
		},
	}
}

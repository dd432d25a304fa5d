package transport

type SignupRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UpdateUserRequest carries optional identity fields; absent fields are left
// unchanged.
type UpdateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// TaskRequest is used for both create and update. Pointer fields distinguish
// "absent" from "set to empty" on partial updates. DueDate is a YYYY-MM-DD
// string; an explicit empty string clears the date.
type TaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Category    *string `json:"category"`
	DueDate     *string `json:"due_date"`
}

// ProfileUpdateRequest carries the client-writable profile fields.
type ProfileUpdateRequest struct {
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
}

// QuickActionRequest is used for create, update and bulk create.
type QuickActionRequest struct {
	Label      *string        `json:"label"`
	Icon       *string        `json:"icon"`
	ActionType *string        `json:"action_type"`
	ActionData map[string]any `json:"action_data"`
	Order      *int           `json:"order"`
	IsActive   *bool          `json:"is_active"`
}

// ReorderRequest is the drag-and-drop payload: new sort positions keyed by id.
type ReorderRequest struct {
	Actions []ReorderItem `json:"actions"`
}

type ReorderItem struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// BulkCreateRequest wraps the quick-action payload list.
type BulkCreateRequest struct {
	Actions []QuickActionRequest `json:"actions"`
}

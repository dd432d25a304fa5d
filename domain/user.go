package domain

import (
	"strings"
	"time"
)

// User represents an authenticated identity owning tasks, a profile and
// quick actions.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullName joins the non-empty name parts with a single space.
func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	parts := make([]string, 0, 2)
	if u.FirstName != "" {
		parts = append(parts, u.FirstName)
	}
	if u.LastName != "" {
		parts = append(parts, u.LastName)
	}
	return strings.Join(parts, " ")
}

const (
	maxUsernameLen = 150
	maxNameLen     = 150
	minPasswordLen = 8
)

// ValidateSignup checks the fields a new registration must carry.
func (u *User) ValidateSignup(password string) error {
	errs := FieldErrors{}
	if strings.TrimSpace(u.Username) == "" {
		errs.Add("username", "this field is required")
	} else if len(u.Username) > maxUsernameLen {
		errs.Add("username", "ensure this field has no more than 150 characters")
	}
	if strings.TrimSpace(u.Email) == "" {
		errs.Add("email", "this field is required")
	} else if !strings.Contains(u.Email, "@") {
		errs.Add("email", "enter a valid email address")
	}
	if len(password) < minPasswordLen {
		errs.Add("password", "password must be at least 8 characters long")
	}
	return errs.Err()
}

// ValidateNewPassword enforces the minimum credential length.
func ValidateNewPassword(password string) error {
	errs := FieldErrors{}
	if len(password) < minPasswordLen {
		errs.Add("new_password", "new password must be at least 8 characters long")
	}
	return errs.Err()
}

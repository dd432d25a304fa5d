package domain

import "time"

const (
	maxDisplayNameLen = 100
	maxBioLen         = 500
)

// Profile is the one-to-one extension of a user: presentation fields plus a
// reference into the photo blob store.
type Profile struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	PhotoKey    string    `json:"profile_photo,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Name resolves the presentation name: the display name when set, otherwise
// the owner's full name, otherwise the username.
func (p *Profile) Name(owner *User) string {
	if p != nil && p.DisplayName != "" {
		return p.DisplayName
	}
	if owner == nil {
		return ""
	}
	if full := owner.FullName(); full != "" {
		return full
	}
	return owner.Username
}

// Validate checks the length constraints on the free-text fields.
func (p *Profile) Validate() error {
	errs := FieldErrors{}
	if len(p.DisplayName) > maxDisplayNameLen {
		errs.Add("display_name", "ensure this field has no more than 100 characters")
	}
	if len(p.Bio) > maxBioLen {
		errs.Add("bio", "ensure this field has no more than 500 characters")
	}
	return errs.Err()
}

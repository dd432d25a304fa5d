package transport

import (
	"encoding/json"
	"time"

	"github.com/taskdeck/backend/domain"
)

// Envelope is the standard API response wrapper used for both success and error payloads.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  interface{} `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

// NewSuccess returns a success envelope.
func NewSuccess(data interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "success",
		Data:   data,
		Meta:   meta,
	}
}

// NewError returns an error envelope with optional metadata. err may be a
// plain message or a field-keyed validation map.
func NewError(code string, err interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "error",
		Code:   code,
		Error:  err,
		Meta:   meta,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// ProfileResponse is the serialized profile, including the derived name and
// the photo URL when a photo is stored.
type ProfileResponse struct {
	ID              string    `json:"id"`
	DisplayName     string    `json:"display_name"`
	Bio             string    `json:"bio"`
	ProfilePhoto    string    `json:"profile_photo,omitempty"`
	ProfilePhotoURL string    `json:"profile_photo_url,omitempty"`
	Name            string    `json:"name"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PhotoPath is where a stored profile photo is served from.
const PhotoPath = "/api/profile/photo/"

// NewProfileResponse builds the profile view from the entity and its owner.
func NewProfileResponse(profile *domain.Profile, owner *domain.User) ProfileResponse {
	resp := ProfileResponse{
		ID:          profile.ID,
		DisplayName: profile.DisplayName,
		Bio:         profile.Bio,
		Name:        profile.Name(owner),
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
	if profile.PhotoKey != "" {
		resp.ProfilePhoto = profile.PhotoKey
		resp.ProfilePhotoURL = PhotoPath
	}
	return resp
}

// UserResponse is the identity payload returned by auth endpoints.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

// AuthResponse carries a signed access token plus the identity it belongs to.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// BulkCreateResponse is the partial-success payload of quick-action bulk
// creation.
type BulkCreateResponse struct {
	Actions []domain.QuickAction `json:"actions"`
	Count   int                  `json:"count"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents the principal behind authenticated requests.
// AuthUserID links the profile to the external identity provider's
// subject; legacy rows imported before the provider migration have it
// unset until their first authenticated request.
type Profile struct {
	ID         uuid.UUID `json:"id" db:"id"`
	AuthUserID *string   `json:"auth_user_id" db:"auth_user_id"`
	Email      string    `json:"email" db:"email"`
	FullName   *string   `json:"full_name" db:"full_name"`
	AvatarURL  *string   `json:"avatar_url" db:"avatar_url"`
	Role       string    `json:"role" db:"role"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

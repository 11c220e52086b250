package domain

import "time"

const (
	RoleCreator = "creator"
	RoleBuyer   = "buyer"
)

// User models a registered account, the root entity every other record
// references. Role is immutable after registration.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Username         string    `json:"username"`
	FullName         string    `json:"full_name"`
	Role             string    `json:"user_type"`
	PasswordHash     string    `json:"-"`
	IsActive         bool      `json:"is_active"`
	ProfileCompleted bool      `json:"profile_completed"`
	CreatedAt        time.Time `json:"created_at"`
}

// ValidRole reports whether role is one of the two registerable roles.
func ValidRole(role string) bool {
	return role == RoleCreator || role == RoleBuyer
}

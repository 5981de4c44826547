package entity

import "time"

// Role controls which route groups an account may reach.
type Role string

const (
	RoleMember     Role = "member"
	RoleInstructor Role = "instructor"
	RoleOwner      Role = "owner"
	RoleAdmin      Role = "admin"
)

// Valid reports whether the role is one of the known enum values.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleInstructor, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// User is an authenticated account. Gym staff accounts carry the gym
// they belong to; admins have no gym.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	GymID     string    `json:"gym_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

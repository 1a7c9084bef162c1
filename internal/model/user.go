package model

import "time"

// Role is the access level attached to an authenticated user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid checks the role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// Identity carries the authenticated caller through request handling.
// Services that filter by ownership take it explicitly instead of reading
// ambient session state.
type Identity struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the identity may bypass ownership filtering.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type User struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Role         Role      `json:"role" db:"role"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

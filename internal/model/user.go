package model

import "time"

// DefaultRole is assigned when a user is created without an explicit role.
const DefaultRole = "user"

// User represents a registered user that tasks can be assigned to.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserUpdate carries the updatable user fields. Name and email are always
// replaced; a nil Role keeps the existing role.
type UserUpdate struct {
	Name  string
	Email string
	Role  *string
}

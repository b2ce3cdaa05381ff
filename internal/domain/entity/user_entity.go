package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in Password field.
type User struct {
	ID        string
	Email     string
	Password  string
	FullName  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

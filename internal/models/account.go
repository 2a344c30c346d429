package models

import "time"

// Role enumerates the account kinds provisioned on an installation.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleGuard Role = "guard"
)

// Account is a row in the users table. Password holds the sha256 hex
// digest of the login password, never the plaintext. ID and CreatedAt
// are immutable after creation.
type Account struct {
	ID        string
	Email     string
	Password  string
	Name      string
	Role      Role
	CreatedAt time.Time
}

package domain

import (
	"strings"
	"time"
)

// Role names known to the application. Roles live in the roles table;
// these constants name the ones the code checks for.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User is an account in the identity store.
// UserName defaults to the e-mail address, as the registration flow sets it.
type User struct {
	ID           string    `json:"id"`
	UserName     string    `json:"user_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserWithRoles is one row of the admin user-management board.
type UserWithRoles struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// RoleAssignment asks for a user to be added to a role.
type RoleAssignment struct {
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required"`
}

// Credentials are submitted to register or log in.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// NormalizeEmail trims and lower-cases an e-mail address. Addresses are
// stored and compared in this form, so "Bob@example.com" and
// "bob@example.com" name the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

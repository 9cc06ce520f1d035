package domain

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleProvider UserRole = "provider"
)

// ParseUserRole validates a role string coming from a registration request.
// Roles are immutable after registration, there is no role-change flow.
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleCustomer, RoleProvider:
		return UserRole(s), true
	}
	return "", false
}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

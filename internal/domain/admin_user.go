package domain

import "time"

// AdminRole enumerates administration area roles.
type AdminRole string

const (
	AdminRoleBride AdminRole = "bride"
	AdminRoleGroom AdminRole = "groom"
	AdminRoleAdmin AdminRole = "admin"
)

// Valid reports whether the role is known.
func (r AdminRole) Valid() bool {
	switch r {
	case AdminRoleBride, AdminRoleGroom, AdminRoleAdmin:
		return true
	}
	return false
}

// AdminUser is a dashboard account belonging to the couple or a helper.
type AdminUser struct {
	ID           string
	Email        string
	FullName     string
	Role         AdminRole
	PasswordHash string
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PasswordReset is a single-use, time-limited password reset token.
type PasswordReset struct {
	ID          string
	AdminUserID string
	Token       string
	ExpiresAt   time.Time
	UsedAt      *time.Time
	CreatedAt   time.Time
}

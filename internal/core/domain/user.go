package domain

import "time"

// UserRole determines what an admin user may do in the back office.
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleEditor UserRole = "EDITOR"
)

// User represents an admin back-office user.
type User struct {
	UserID       string   `json:"userID"` // Primary key (UUID)
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
	IsActive     bool     `json:"isActive"`
	// Refresh token state; hash only, the raw token never touches storage.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
}

// GoogleUserInfo holds the subset of the Google userinfo payload we consume
// during OAuth sign-in.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

package services

import (
	"context"
	"time"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by their unique identifier.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by their username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves a paginated list of active users.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser persists a new admin user.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)

	// DeactivateUser marks a user as inactive.
	DeactivateUser(ctx context.Context, userID string, deactivatedBy string) error

	// SetRefreshToken stores the hash and expiry of a user's refresh token.
	SetRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error

	// ClearRefreshToken removes any stored refresh token for the user (logout).
	ClearRefreshToken(ctx context.Context, userID string) error

	// FindOrCreateGoogleUser resolves a Google OAuth sign-in to a local user,
	// creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}

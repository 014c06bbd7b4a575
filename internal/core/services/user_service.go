package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/apperrors"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
	portsrepo "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/repositories"
	portssvc "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/services"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/dto"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/utils"
	"github.com/google/uuid"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service
func NewUserService(repo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: repo}
}

// Ensure userService implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: passwordHash,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username or email already taken", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("username", user.Username))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

func (s *userService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = updaterUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}

	s.LogInfo(ctx, "User updated", slog.String("user_id", userID))
	return user, nil
}

func (s *userService) DeactivateUser(ctx context.Context, userID string, deactivatedBy string) error {
	if userID == deactivatedBy {
		return fmt.Errorf("%w: users cannot deactivate themselves", apperrors.ErrValidation)
	}
	if err := s.userRepo.DeactivateUser(ctx, userID, deactivatedBy, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate user", slog.String("user_id", userID))
		}
		return err
	}
	s.LogInfo(ctx, "User deactivated", slog.String("user_id", userID))
	return nil
}

func (s *userService) SetRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, expiryTime)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, "", nil)
}

// FindOrCreateGoogleUser resolves a verified Google profile to a local admin
// user, creating an EDITOR account on first sign-in.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	if info.Email == "" || !info.VerifiedEmail {
		return nil, fmt.Errorf("%w: google account email is missing or unverified", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	now := time.Now()
	newUser := domain.User{
		UserID:   uuid.NewString(),
		Username: info.Email,
		Name:     info.Name,
		Email:    info.Email,
		Role:     domain.RoleEditor,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     systemUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: systemUserID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to create user from google sign-in", slog.String("email", info.Email))
		return nil, fmt.Errorf("failed to create user from google sign-in: %w", err)
	}

	s.LogInfo(ctx, "User created from google sign-in", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}

package dto

import (
	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
)

// CreateUserRequest defines the payload for creating an admin user.
type CreateUserRequest struct {
	Username string          `json:"username" binding:"required,min=3"`
	Password string          `json:"password" binding:"required,min=8"`
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=ADMIN EDITOR"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateUserRequest struct {
	Name  *string          `json:"name"`
	Email *string          `json:"email" binding:"omitempty,email"`
	Role  *domain.UserRole `json:"role" binding:"omitempty,oneof=ADMIN EDITOR"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// UserResponse represents a user in API responses. Never carries secrets.
type UserResponse struct {
	UserID   string          `json:"userID"`
	Username string          `json:"username"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Role     domain.UserRole `json:"role"`
	IsActive bool            `json:"isActive"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		IsActive: user.IsActive,
	}
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: responses}
}

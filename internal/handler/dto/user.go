// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/userhub/userhub/internal/model"
	"github.com/userhub/userhub/internal/service"
)

// CreateUserRequest represents the request body for registering a user.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest represents the request body for a partial update.
// Absent fields leave the stored values unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// ChangePasswordRequest represents the request body for a password change.
type ChangePasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// UserResponse represents a user in API responses.
// It never carries a password in any form.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse represents a paginated list of users.
type UserListResponse struct {
	Data       []UserResponse `json:"data"`
	Pagination *Pagination    `json:"pagination"`
}

// Pagination provides offset-based pagination info.
type Pagination struct {
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// ToUserResponse converts a User model to a UserResponse DTO.
func ToUserResponse(user *model.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserListResponse converts one page of users to a UserListResponse.
func ToUserListResponse(out *service.ListUsersOutput) *UserListResponse {
	responses := make([]UserResponse, len(out.Users))
	for i, user := range out.Users {
		responses[i] = *ToUserResponse(user)
	}

	totalPages := 0
	if out.Size > 0 {
		totalPages = int((out.TotalElements + int64(out.Size) - 1) / int64(out.Size))
	}

	return &UserListResponse{
		Data: responses,
		Pagination: &Pagination{
			Page:          out.Page,
			Size:          out.Size,
			TotalElements: out.TotalElements,
			TotalPages:    totalPages,
		},
	}
}

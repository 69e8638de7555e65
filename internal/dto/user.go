package dto

import "github.com/gathr-app/gathr_backend/internal/core/domain"

// CreateUserRequest is the payload to create (or look up) a user by email.
type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UserResponse is the user representation returned to clients. The token is
// the opaque credential used on all subsequent requests.
type UserResponse struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// ToUserResponse converts a domain User to a UserResponse
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID: u.UserID,
		Email:  u.Email,
		Token:  u.Token,
	}
}

// AngelaMos | 2026
// dto.go

package auth

import (
	"time"
)

const (
	RoleFarmer = "farmer"
	RoleBuyer  = "buyer"
)

func IsValidRole(role string) bool {
	return role == RoleFarmer || role == RoleBuyer
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=72"`
	UserType string `json:"userType" validate:"required,oneof=farmer buyer"`
}

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=100"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Phone    string `json:"phone"    validate:"required,min=5,max=32"`
	Location string `json:"location" validate:"required,min=1,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	UserType string `json:"userType" validate:"required,oneof=farmer buyer"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required,max=72"`
	NewPassword     string `json:"new_password"     validate:"required,min=6,max=72"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	UserType  string    `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	Message   string       `json:"message"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

func toUserResponse(u *UserInfo) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Location:  u.Location,
		UserType:  u.Role,
		CreatedAt: u.CreatedAt,
	}
}

package dto

import "github.com/harish176/placement-portal/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"required,oneof=student faculty admin"`
}

// SignupRequest is a student self-registration.
type SignupRequest struct {
	Name          string   `json:"name" binding:"required,min=2,max=100"`
	Email         string   `json:"email" binding:"required,email"`
	Phone         string   `json:"phone" binding:"required,phone"`
	Password      string   `json:"password" binding:"required,min=6,max=72"`
	ScholarNumber string   `json:"scholarNumber" binding:"required,scholarno"`
	Branch        string   `json:"branch" binding:"required,max=100"`
	Degree        string   `json:"degree" binding:"omitempty,max=50"`
	Batch         int      `json:"batch" binding:"required,gte=1950,lte=2100"`
	CGPA          *float64 `json:"cgpa" binding:"omitempty,gte=0,lte=10"`
	Gender        string   `json:"gender" binding:"omitempty,oneof=male female other"`
	DateOfBirth   *string  `json:"dateOfBirth" binding:"omitempty,iso8601"`
	Address       string   `json:"address" binding:"omitempty,max=300"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ChangePasswordRequest changes the caller's own password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,max=72,nefield=CurrentPassword"`
}

// LoginResponse is returned by login and refresh.
type LoginResponse struct {
	User         interface{} `json:"user"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
	ExpiresIn    int64       `json:"expiresIn" example:"604800"`
}

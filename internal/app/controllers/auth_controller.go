package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/harish176/placement-portal/internal/app/auth"
	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/app/models/dto"
	"github.com/harish176/placement-portal/internal/middleware"
)

// Authenticator is the part of the auth service the controller drives.
type Authenticator interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Signup(ctx context.Context, req *dto.SignupRequest) (*models.Student, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	Profile(ctx context.Context, identity *appAuth.Identity) (interface{}, error)
	ChangePassword(ctx context.Context, identity *appAuth.Identity, req *dto.ChangePasswordRequest) error
}

// AuthController handles authentication related operations
type AuthController struct {
	authService Authenticator
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService Authenticator, logger zerolog.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

// Login authenticates a user for the selected role
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Failure 429 {object} dto.APIResponse "Too many attempts"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Login successful", resp))
}

// Signup registers a student pending approval
// @Summary Student signup
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Registration"
// @Success 201 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.APIResponse "Invalid request data or duplicate"
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.authService.Signup(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("studentID", student.ID.Hex()).Msg("Student registered")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Registration successful. Your account is pending approval.", student))
}

// RefreshToken issues a new token pair
// @Summary Refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.APIResponse "Invalid or expired token"
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.authService.Refresh(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Token refreshed successfully", resp))
}

// Logout is stateless; the client discards its tokens.
// @Summary Logout
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Logged out successfully", nil))
}

// Me returns the caller's profile
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	profile, err := c.authService.Profile(ctx.Request.Context(), middleware.IdentityFrom(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Profile retrieved successfully", profile))
}

// ChangePassword replaces the caller's password
// @Summary Change password
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Param request body dto.ChangePasswordRequest true "Passwords"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Wrong current password"
// @Router /auth/change-password [put]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.authService.ChangePassword(ctx.Request.Context(), middleware.IdentityFrom(ctx), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Password changed successfully", nil))
}

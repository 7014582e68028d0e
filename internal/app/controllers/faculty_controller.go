package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harish176/placement-portal/internal/app/models/dto"
	"github.com/harish176/placement-portal/internal/app/repositories"
	"github.com/harish176/placement-portal/internal/app/services"
	"github.com/harish176/placement-portal/internal/middleware"
)

// FacultyController handles faculty-related operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// ListFaculty lists faculty members
// @Summary List faculty
// @Tags faculty
// @Security BearerAuth
// @Param department query string false "Department"
// @Param status query string false "active, inactive, retired or terminated"
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty}
// @Router /faculty [get]
func (c *FacultyController) ListFaculty(ctx *gin.Context) {
	var filter repositories.FacultyFilter
	page, limit, err := bindList(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	faculty, pagination, err := c.facultyService.ListFaculty(ctx.Request.Context(), filter, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("Faculty retrieved successfully", faculty, pagination))
}

// GetFacultyByID retrieves a faculty member
// @Summary Get faculty
// @Tags faculty
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFacultyByID(ctx *gin.Context) {
	faculty, err := c.facultyService.GetFacultyByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Faculty retrieved successfully", faculty))
}

// CreateFaculty handles faculty creation
// @Summary Create faculty
// @Tags faculty
// @Accept json
// @Security BearerAuth
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=models.Faculty}
// @Failure 400 {object} dto.APIResponse "Invalid request data or duplicate"
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	faculty, err := c.facultyService.CreateFaculty(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Faculty created successfully", faculty))
}

// UpdateFaculty updates an existing faculty
// @Summary Update faculty
// @Tags faculty
// @Accept json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Param request body dto.UpdateFacultyRequest true "Changes"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Router /faculty/{id} [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	var req dto.UpdateFacultyRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	faculty, err := c.facultyService.UpdateFaculty(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Faculty updated successfully", faculty))
}

// UpdateFacultyStatus changes employment status
// @Summary Update faculty status
// @Tags faculty
// @Accept json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Param request body dto.UpdateFacultyStatusRequest true "Status"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Router /faculty/{id}/status [patch]
func (c *FacultyController) UpdateFacultyStatus(ctx *gin.Context) {
	var req dto.UpdateFacultyStatusRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	faculty, err := c.facultyService.UpdateFacultyStatus(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Faculty status updated successfully", faculty))
}

// DeleteFaculty deactivates a faculty member
// @Summary Deactivate faculty
// @Tags faculty
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse
// @Router /faculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	if err := c.facultyService.DeleteFaculty(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Faculty deactivated successfully", nil))
}

// RestoreFaculty reactivates a faculty member
// @Router /faculty/{id}/restore [patch]
func (c *FacultyController) RestoreFaculty(ctx *gin.Context) {
	if err := c.facultyService.RestoreFaculty(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Faculty restored successfully", nil))
}

// DeleteFacultyPermanently removes a faculty member
// @Router /faculty/{id}/permanent [delete]
func (c *FacultyController) DeleteFacultyPermanently(ctx *gin.Context) {
	if err := c.facultyService.DeleteFacultyPermanently(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Faculty deleted permanently", nil))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harish176/placement-portal/internal/app/models/dto"
	"github.com/harish176/placement-portal/internal/app/repositories"
	"github.com/harish176/placement-portal/internal/app/services"
	"github.com/harish176/placement-portal/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// ListStudents lists students
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Name, email or scholar number"
// @Param branch query string false "Branch"
// @Param batch query int false "Batch"
// @Param status query string false "pending, approved or rejected"
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	var filter repositories.StudentFilter
	page, limit, err := bindList(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	students, pagination, err := c.studentService.ListStudents(ctx.Request.Context(), filter, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("Students retrieved successfully", students, pagination))
}

// GetStudentByID retrieves a student
// @Summary Get student
// @Tags students
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.APIResponse "Invalid ID"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student retrieved successfully", student))
}

// ListStudentPlacements lists the placements linked to a student
// @Summary Student placements
// @Tags students
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Placement}
// @Failure 403 {object} dto.APIResponse "Not approved"
// @Router /students/{id}/placements [get]
func (c *StudentController) ListStudentPlacements(ctx *gin.Context) {
	var opts repositories.ListOptions
	page, limit, err := bindList(ctx, &opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	placements, pagination, err := c.studentService.ListStudentPlacements(ctx.Request.Context(), ctx.Param("id"), page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("Placements retrieved successfully", placements, pagination))
}

// CreateStudent creates an approved student
// @Summary Create student
// @Tags students
// @Accept json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student"
// @Success 201 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.APIResponse "Invalid request data or duplicate"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Student created successfully", student))
}

// UpdateStudent partially updates a student
// @Summary Update student
// @Tags students
// @Accept json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Changes"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student updated successfully", student))
}

// UpdateStudentStatus approves or rejects a registration
// @Summary Update student status
// @Tags students
// @Accept json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStudentStatusRequest true "Status"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Router /students/{id}/status [patch]
func (c *StudentController) UpdateStudentStatus(ctx *gin.Context) {
	var req dto.UpdateStudentStatusRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudentStatus(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student status updated successfully", student))
}

// DeleteStudent deactivates a student
// @Summary Deactivate student
// @Tags students
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student deactivated successfully", nil))
}

// RestoreStudent reactivates a student
// @Summary Restore student
// @Tags students
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Router /students/{id}/restore [patch]
func (c *StudentController) RestoreStudent(ctx *gin.Context) {
	if err := c.studentService.RestoreStudent(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student restored successfully", nil))
}

// DeleteStudentPermanently removes a student
// @Summary Delete student permanently
// @Tags students
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Router /students/{id}/permanent [delete]
func (c *StudentController) DeleteStudentPermanently(ctx *gin.Context) {
	if err := c.studentService.DeleteStudentPermanently(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student deleted permanently", nil))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harish176/placement-portal/internal/app/models/dto"
	"github.com/harish176/placement-portal/internal/app/repositories"
	"github.com/harish176/placement-portal/internal/app/services"
	"github.com/harish176/placement-portal/internal/middleware"
)

// PlacementController handles placement records
type PlacementController struct {
	placementService services.PlacementService
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService services.PlacementService) *PlacementController {
	return &PlacementController{placementService: placementService}
}

// ListPlacements lists placement records
// @Summary List placements
// @Tags placements
// @Security BearerAuth
// @Param companyName query string false "Company name (exact, case-insensitive)"
// @Param placementType query string false "FTE, Internship, Intern+FTE or PPO (send + as %2B)"
// @Param branch query string false "Branch"
// @Param batch query int false "Batch"
// @Param minPackage query string false "Minimum package"
// @Param maxPackage query string false "Maximum package"
// @Success 200 {object} dto.APIResponse{data=[]models.Placement}
// @Router /placements [get]
func (c *PlacementController) ListPlacements(ctx *gin.Context) {
	var filter repositories.PlacementFilter
	page, limit, err := bindList(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	placements, pagination, err := c.placementService.ListPlacements(ctx.Request.Context(), filter, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("Placements retrieved successfully", placements, pagination))
}

// GetStats summarizes active placements
// @Summary Placement statistics
// @Tags placements
// @Security BearerAuth
// @Param batch query int false "Batch"
// @Success 200 {object} dto.APIResponse{data=models.PlacementStats}
// @Router /placements/stats [get]
func (c *PlacementController) GetStats(ctx *gin.Context) {
	batch, err := optionalIntQuery(ctx, "batch")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	stats, err := c.placementService.GetStats(ctx.Request.Context(), batch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Placement statistics retrieved successfully", stats))
}

// GetPlacementByID retrieves a placement
// @Summary Get placement
// @Tags placements
// @Security BearerAuth
// @Param id path string true "Placement ID"
// @Success 200 {object} dto.APIResponse{data=models.Placement}
// @Failure 404 {object} dto.APIResponse "Placement not found"
// @Router /placements/{id} [get]
func (c *PlacementController) GetPlacementByID(ctx *gin.Context) {
	placement, err := c.placementService.GetPlacementByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Placement retrieved successfully", placement))
}

// CreatePlacement records an offer and links it to the student and company
// @Summary Create placement
// @Tags placements
// @Accept json
// @Security BearerAuth
// @Param request body dto.CreatePlacementRequest true "Placement"
// @Success 201 {object} dto.APIResponse{data=models.Placement}
// @Failure 400 {object} dto.APIResponse "Invalid data or unknown scholar number"
// @Router /placements [post]
func (c *PlacementController) CreatePlacement(ctx *gin.Context) {
	var req dto.CreatePlacementRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	placement, err := c.placementService.CreatePlacement(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Placement created successfully", placement))
}

// UpdatePlacement updates a placement and re-links it
// @Router /placements/{id} [put]
func (c *PlacementController) UpdatePlacement(ctx *gin.Context) {
	var req dto.UpdatePlacementRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	placement, err := c.placementService.UpdatePlacement(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Placement updated successfully", placement))
}

// DeletePlacement deactivates a placement
// @Router /placements/{id} [delete]
func (c *PlacementController) DeletePlacement(ctx *gin.Context) {
	if err := c.placementService.DeletePlacement(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Placement deactivated successfully", nil))
}

// RestorePlacement reactivates a placement
// @Router /placements/{id}/restore [patch]
func (c *PlacementController) RestorePlacement(ctx *gin.Context) {
	if err := c.placementService.RestorePlacement(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Placement restored successfully", nil))
}

// DeletePlacementPermanently removes a placement
// @Router /placements/{id}/permanent [delete]
func (c *PlacementController) DeletePlacementPermanently(ctx *gin.Context) {
	if err := c.placementService.DeletePlacementPermanently(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Placement deleted permanently", nil))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harish176/placement-portal/internal/app/models/dto"
	"github.com/harish176/placement-portal/internal/app/repositories"
	"github.com/harish176/placement-portal/internal/app/services"
	"github.com/harish176/placement-portal/internal/middleware"
)

// TPCMemberController serves the placement cell roster
type TPCMemberController struct {
	memberService services.TPCMemberService
}

// NewTPCMemberController creates a new TPCMemberController
func NewTPCMemberController(memberService services.TPCMemberService) *TPCMemberController {
	return &TPCMemberController{memberService: memberService}
}

// ListMembers lists roster entries
// @Summary List TPC members
// @Tags tpc-members
// @Param team query string false "Team"
// @Param category query string false "student or faculty"
// @Param session query string false "Session, e.g. 2024-25"
// @Success 200 {object} dto.APIResponse{data=[]models.TPCMember}
// @Router /tpc-members [get]
func (c *TPCMemberController) ListMembers(ctx *gin.Context) {
	var filter repositories.TPCMemberFilter
	page, limit, err := bindList(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	members, pagination, err := c.memberService.ListMembers(ctx.Request.Context(), filter, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("TPC members retrieved successfully", members, pagination))
}

// GetMemberByID retrieves a roster entry
// @Router /tpc-members/{id} [get]
func (c *TPCMemberController) GetMemberByID(ctx *gin.Context) {
	member, err := c.memberService.GetMemberByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("TPC member retrieved successfully", member))
}

// CreateMember adds a roster entry
// @Summary Create TPC member
// @Tags tpc-members
// @Accept json
// @Security BearerAuth
// @Param request body dto.CreateTPCMemberRequest true "Member"
// @Success 201 {object} dto.APIResponse{data=models.TPCMember}
// @Router /tpc-members [post]
func (c *TPCMemberController) CreateMember(ctx *gin.Context) {
	var req dto.CreateTPCMemberRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	member, err := c.memberService.CreateMember(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("TPC member created successfully", member))
}

// UpdateMember updates a roster entry
// @Router /tpc-members/{id} [put]
func (c *TPCMemberController) UpdateMember(ctx *gin.Context) {
	var req dto.UpdateTPCMemberRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	member, err := c.memberService.UpdateMember(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("TPC member updated successfully", member))
}

// DeleteMember deactivates a roster entry
// @Router /tpc-members/{id} [delete]
func (c *TPCMemberController) DeleteMember(ctx *gin.Context) {
	if err := c.memberService.DeleteMember(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("TPC member deactivated successfully", nil))
}

// RestoreMember reactivates a roster entry
// @Router /tpc-members/{id}/restore [patch]
func (c *TPCMemberController) RestoreMember(ctx *gin.Context) {
	if err := c.memberService.RestoreMember(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("TPC member restored successfully", nil))
}

// DeleteMemberPermanently removes a roster entry
// @Router /tpc-members/{id}/permanent [delete]
func (c *TPCMemberController) DeleteMemberPermanently(ctx *gin.Context) {
	if err := c.memberService.DeleteMemberPermanently(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("TPC member deleted permanently", nil))
}

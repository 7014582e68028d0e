package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harish176/placement-portal/internal/app/models/dto"
	"github.com/harish176/placement-portal/internal/app/repositories"
	"github.com/harish176/placement-portal/internal/app/services"
	"github.com/harish176/placement-portal/internal/middleware"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
)

// CompanyController handles company-related operations
type CompanyController struct {
	companyService services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService services.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// ListCompanies lists recruiting companies
// @Summary List companies
// @Tags companies
// @Security BearerAuth
// @Param industry query string false "Industry"
// @Param year query int false "Has yearly data for year"
// @Param branch query string false "Branch allowed in any year"
// @Success 200 {object} dto.APIResponse{data=[]models.Company}
// @Router /companies [get]
func (c *CompanyController) ListCompanies(ctx *gin.Context) {
	var filter repositories.CompanyFilter
	page, limit, err := bindList(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	companies, pagination, err := c.companyService.ListCompanies(ctx.Request.Context(), filter, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("Companies retrieved successfully", companies, pagination))
}

// GetCompanyByID retrieves a company
// @Summary Get company
// @Tags companies
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 200 {object} dto.APIResponse{data=models.Company}
// @Failure 404 {object} dto.APIResponse "Company not found"
// @Router /companies/{id} [get]
func (c *CompanyController) GetCompanyByID(ctx *gin.Context) {
	company, err := c.companyService.GetCompanyByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Company retrieved successfully", company))
}

// CreateCompany creates a company
// @Summary Create company
// @Tags companies
// @Accept json
// @Security BearerAuth
// @Param request body dto.CreateCompanyRequest true "Company"
// @Success 201 {object} dto.APIResponse{data=models.Company}
// @Failure 400 {object} dto.APIResponse "Invalid request data or duplicate name"
// @Router /companies [post]
func (c *CompanyController) CreateCompany(ctx *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	company, err := c.companyService.CreateCompany(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Company created successfully", company))
}

// UpdateCompany updates a company
// @Summary Update company
// @Tags companies
// @Accept json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Param request body dto.UpdateCompanyRequest true "Changes"
// @Success 200 {object} dto.APIResponse{data=models.Company}
// @Router /companies/{id} [put]
func (c *CompanyController) UpdateCompany(ctx *gin.Context) {
	var req dto.UpdateCompanyRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	company, err := c.companyService.UpdateCompany(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Company updated successfully", company))
}

// DeleteCompany deactivates a company
// @Router /companies/{id} [delete]
func (c *CompanyController) DeleteCompany(ctx *gin.Context) {
	if err := c.companyService.DeleteCompany(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Company deactivated successfully", nil))
}

// RestoreCompany reactivates a company
// @Router /companies/{id}/restore [patch]
func (c *CompanyController) RestoreCompany(ctx *gin.Context) {
	if err := c.companyService.RestoreCompany(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Company restored successfully", nil))
}

// DeleteCompanyPermanently removes a company and its logo
// @Router /companies/{id}/permanent [delete]
func (c *CompanyController) DeleteCompanyPermanently(ctx *gin.Context) {
	if err := c.companyService.DeleteCompanyPermanently(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Company deleted permanently", nil))
}

// AddYearlyData appends one recruitment year
// @Summary Add yearly data
// @Tags companies
// @Accept json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Param request body dto.YearlyDataRequest true "Year"
// @Success 201 {object} dto.APIResponse{data=models.Company}
// @Failure 400 {object} dto.APIResponse "Duplicate year"
// @Router /companies/{id}/yearly-data [post]
func (c *CompanyController) AddYearlyData(ctx *gin.Context) {
	var req dto.YearlyDataRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	company, err := c.companyService.AddYearlyData(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Yearly data added successfully", company))
}

// UpdateYearlyData replaces one recruitment year
// @Router /companies/{id}/yearly-data/{year} [put]
func (c *CompanyController) UpdateYearlyData(ctx *gin.Context) {
	year, err := yearParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.YearlyDataRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	company, err := c.companyService.UpdateYearlyData(ctx.Request.Context(), ctx.Param("id"), year, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Yearly data updated successfully", company))
}

// DeleteYearlyData removes one recruitment year
// @Router /companies/{id}/yearly-data/{year} [delete]
func (c *CompanyController) DeleteYearlyData(ctx *gin.Context) {
	year, err := yearParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	company, err := c.companyService.DeleteYearlyData(ctx.Request.Context(), ctx.Param("id"), year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Yearly data deleted successfully", company))
}

// UploadLogo stores a company logo
// @Summary Upload logo
// @Tags companies
// @Accept multipart/form-data
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Param logo formData file true "Logo (png, jpg, webp, svg; max 2 MiB)"
// @Success 200 {object} dto.APIResponse{data=models.Company}
// @Router /companies/{id}/logo [post]
func (c *CompanyController) UploadLogo(ctx *gin.Context) {
	file, err := ctx.FormFile(services.LogoFormField)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewFieldError(services.LogoFormField, "is required"))
		return
	}

	company, err := c.companyService.UploadLogo(ctx.Request.Context(), ctx.Param("id"), file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Logo uploaded successfully", company))
}

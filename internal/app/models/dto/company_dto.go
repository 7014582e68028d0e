package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
	"github.com/harish176/placement-portal/internal/pkg/money"
)

// ContactPersonRequest is the recruiter contact.
type ContactPersonRequest struct {
	Name  string `json:"name" binding:"omitempty,max=100"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"omitempty,phone"`
}

// YearlyDataRequest is one year's recruiting terms.
type YearlyDataRequest struct {
	Year            int                  `json:"year" binding:"required,gte=1990,lte=2100"`
	Package         *money.Amount        `json:"package" binding:"required"`
	AllowedBranches []string             `json:"allowedBranches" binding:"omitempty,dive,max=100"`
	AllowedCourses  []string             `json:"allowedCourses" binding:"omitempty,dive,max=100"`
	InterviewMode   models.InterviewMode `json:"interviewMode" binding:"omitempty,oneof=online offline hybrid"`
	VisitDate       string               `json:"visitDate" binding:"omitempty,iso8601"`
	RolesOffered    []string             `json:"rolesOffered" binding:"omitempty,dive,max=100"`
	StudentsHired   int                  `json:"studentsHired" binding:"gte=0"`
}

// CreateCompanyRequest represents company creation data
type CreateCompanyRequest struct {
	Name          string                `json:"name" binding:"required,min=2,max=200"`
	Description   string                `json:"description" binding:"omitempty,max=2000"`
	Website       string                `json:"website" binding:"omitempty,url"`
	Industry      string                `json:"industry" binding:"omitempty,max=100"`
	Location      string                `json:"location" binding:"omitempty,max=200"`
	ContactPerson *ContactPersonRequest `json:"contactPerson"`
	YearlyData    []YearlyDataRequest   `json:"yearlyData" binding:"omitempty,dive"`
}

// UpdateCompanyRequest is a partial update. A present yearlyData list
// replaces the stored one.
type UpdateCompanyRequest struct {
	Name          *string               `json:"name" binding:"omitempty,min=2,max=200"`
	Description   *string               `json:"description" binding:"omitempty,max=2000"`
	Website       *string               `json:"website" binding:"omitempty,url"`
	Industry      *string               `json:"industry" binding:"omitempty,max=100"`
	Location      *string               `json:"location" binding:"omitempty,max=200"`
	ContactPerson *ContactPersonRequest `json:"contactPerson"`
	YearlyData    []YearlyDataRequest   `json:"yearlyData" binding:"omitempty,dive"`
	IsActive      *bool                 `json:"isActive"`
}

// Validate rejects negative packages and repeated years.
func (r *CreateCompanyRequest) Validate() error {
	return validateYearlyData(r.YearlyData)
}

// Validate rejects negative packages and repeated years.
func (r *UpdateCompanyRequest) Validate() error {
	return validateYearlyData(r.YearlyData)
}

// Validate checks a single entry.
func (r *YearlyDataRequest) Validate() error {
	if isNegative(r.Package) {
		return apperrors.NewFieldError("package", "package must be a non-negative amount")
	}
	return nil
}

func validateYearlyData(entries []YearlyDataRequest) error {
	fields := map[string]string{}
	seen := make(map[int]bool, len(entries))
	for i, e := range entries {
		if isNegative(e.Package) {
			fields[fmt.Sprintf("yearlyData[%d].package", i)] = "package must be a non-negative amount"
		}
		if seen[e.Year] {
			fields[fmt.Sprintf("yearlyData[%d].year", i)] = "year " + strconv.Itoa(e.Year) + " appears more than once"
		}
		seen[e.Year] = true
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError("Validation failed", fields)
	}
	return nil
}

// ToModel converts one entry.
func (r *YearlyDataRequest) ToModel() (models.YearlyData, error) {
	visit, err := parseOptionalDate(r.VisitDate)
	if err != nil {
		return models.YearlyData{}, apperrors.NewFieldError("visitDate", err.Error())
	}
	out := models.YearlyData{
		Year:            r.Year,
		AllowedBranches: trimAll(r.AllowedBranches),
		AllowedCourses:  trimAll(r.AllowedCourses),
		InterviewMode:   r.InterviewMode,
		VisitDate:       visit,
		RolesOffered:    trimAll(r.RolesOffered),
		StudentsHired:   r.StudentsHired,
	}
	if r.Package != nil {
		out.Package = *r.Package
	}
	return out, nil
}

func yearlyDataToModels(entries []YearlyDataRequest) ([]models.YearlyData, error) {
	out := make([]models.YearlyData, 0, len(entries))
	for i := range entries {
		y, err := entries[i].ToModel()
		if err != nil {
			return nil, err
		}
		out = append(out, y)
	}
	models.SortYearlyData(out)
	return out, nil
}

func (c *ContactPersonRequest) toModel() *models.ContactPerson {
	if c == nil {
		return nil
	}
	cp := &models.ContactPerson{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.ToLower(strings.TrimSpace(c.Email)),
		Phone: strings.TrimSpace(c.Phone),
	}
	if cp.IsEmpty() {
		return nil
	}
	return cp
}

// ToModel builds a new active company.
func (r *CreateCompanyRequest) ToModel() (*models.Company, error) {
	yearly, err := yearlyDataToModels(r.YearlyData)
	if err != nil {
		return nil, err
	}
	return &models.Company{
		Name:          strings.TrimSpace(r.Name),
		Description:   strings.TrimSpace(r.Description),
		Website:       strings.TrimSpace(r.Website),
		Industry:      strings.TrimSpace(r.Industry),
		Location:      strings.TrimSpace(r.Location),
		ContactPerson: r.ContactPerson.toModel(),
		YearlyData:    yearly,
		IsActive:      true,
	}, nil
}

// ApplyTo copies the present fields onto an existing company.
func (r *UpdateCompanyRequest) ApplyTo(c *models.Company) error {
	if r.Name != nil {
		c.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		c.Description = strings.TrimSpace(*r.Description)
	}
	if r.Website != nil {
		c.Website = strings.TrimSpace(*r.Website)
	}
	if r.Industry != nil {
		c.Industry = strings.TrimSpace(*r.Industry)
	}
	if r.Location != nil {
		c.Location = strings.TrimSpace(*r.Location)
	}
	if r.ContactPerson != nil {
		c.ContactPerson = r.ContactPerson.toModel()
	}
	if r.YearlyData != nil {
		yearly, err := yearlyDataToModels(r.YearlyData)
		if err != nil {
			return err
		}
		c.YearlyData = yearly
	}
	if r.IsActive != nil {
		c.IsActive = *r.IsActive
	}
	return nil
}

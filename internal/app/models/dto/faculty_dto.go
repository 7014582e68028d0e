package dto

import (
	"strings"

	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
)

// CreateFacultyRequest represents faculty creation data
type CreateFacultyRequest struct {
	Name           string               `json:"name" binding:"required,min=2,max=100"`
	Email          string               `json:"email" binding:"required,email"`
	ContactNumber  string               `json:"contactNumber" binding:"required,phone"`
	Password       string               `json:"password" binding:"required,min=6,max=72"`
	EmployeeID     string               `json:"employeeId" binding:"omitempty,max=30"`
	Department     string               `json:"department" binding:"required,max=100"`
	Designation    string               `json:"designation" binding:"omitempty,max=100"`
	Qualification  string               `json:"qualification" binding:"omitempty,max=200"`
	Specialization string               `json:"specialization" binding:"omitempty,max=200"`
	Experience     int                  `json:"experience" binding:"gte=0,lte=70"`
	JoiningDate    *string              `json:"joiningDate" binding:"omitempty,iso8601"`
	Role           models.Role          `json:"role" binding:"omitempty,oneof=faculty admin"`
	Status         models.FacultyStatus `json:"status" binding:"omitempty,oneof=active inactive retired terminated"`
}

// UpdateFacultyRequest is a partial update; nil fields are left untouched.
type UpdateFacultyRequest struct {
	Name           *string      `json:"name" binding:"omitempty,min=2,max=100"`
	Email          *string      `json:"email" binding:"omitempty,email"`
	ContactNumber  *string      `json:"contactNumber" binding:"omitempty,phone"`
	EmployeeID     *string      `json:"employeeId" binding:"omitempty,max=30"`
	Department     *string      `json:"department" binding:"omitempty,max=100"`
	Designation    *string      `json:"designation" binding:"omitempty,max=100"`
	Qualification  *string      `json:"qualification" binding:"omitempty,max=200"`
	Specialization *string      `json:"specialization" binding:"omitempty,max=200"`
	Experience     *int         `json:"experience" binding:"omitempty,gte=0,lte=70"`
	JoiningDate    *string      `json:"joiningDate" binding:"omitempty,iso8601"`
	Role           *models.Role `json:"role" binding:"omitempty,oneof=faculty admin"`
	IsActive       *bool        `json:"isActive"`
}

// UpdateFacultyStatusRequest changes employment status.
type UpdateFacultyStatusRequest struct {
	Status models.FacultyStatus `json:"status" binding:"required,oneof=active inactive retired terminated"`
}

// ToModel builds a faculty member. Role defaults to faculty and status to active.
func (r *CreateFacultyRequest) ToModel(passwordHash string) (*models.Faculty, error) {
	f := &models.Faculty{
		Name:           strings.TrimSpace(r.Name),
		Email:          strings.ToLower(strings.TrimSpace(r.Email)),
		ContactNumber:  strings.TrimSpace(r.ContactNumber),
		Password:       passwordHash,
		EmployeeID:     strings.TrimSpace(r.EmployeeID),
		Department:     strings.TrimSpace(r.Department),
		Designation:    strings.TrimSpace(r.Designation),
		Qualification:  strings.TrimSpace(r.Qualification),
		Specialization: strings.TrimSpace(r.Specialization),
		Experience:     r.Experience,
		Role:           models.RoleFaculty,
		Status:         models.FacultyActive,
		IsActive:       true,
	}
	if r.Role != "" {
		f.Role = r.Role
	}
	if r.Status != "" {
		f.Status = r.Status
	}
	if r.JoiningDate != nil {
		joined, err := parseOptionalDate(*r.JoiningDate)
		if err != nil {
			return nil, apperrors.NewFieldError("joiningDate", err.Error())
		}
		f.JoiningDate = joined
	}
	return f, nil
}

// ApplyTo copies the present fields onto an existing faculty member.
func (r *UpdateFacultyRequest) ApplyTo(f *models.Faculty) error {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&f.Name, r.Name)
	set(&f.ContactNumber, r.ContactNumber)
	set(&f.EmployeeID, r.EmployeeID)
	set(&f.Department, r.Department)
	set(&f.Designation, r.Designation)
	set(&f.Qualification, r.Qualification)
	set(&f.Specialization, r.Specialization)
	if r.Email != nil {
		f.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Experience != nil {
		f.Experience = *r.Experience
	}
	if r.JoiningDate != nil {
		joined, err := parseOptionalDate(*r.JoiningDate)
		if err != nil {
			return apperrors.NewFieldError("joiningDate", err.Error())
		}
		f.JoiningDate = joined
	}
	if r.Role != nil {
		f.Role = *r.Role
	}
	if r.IsActive != nil {
		f.IsActive = *r.IsActive
	}
	return nil
}

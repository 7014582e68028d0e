package dto

import (
	"strings"

	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
)

// CreateStudentRequest is an admin-created student. Status defaults to approved.
type CreateStudentRequest struct {
	SignupRequest
	Status models.StudentStatus `json:"status" binding:"omitempty,oneof=pending approved rejected"`
}

// UpdateStudentRequest is a partial update; nil fields are left untouched.
type UpdateStudentRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=2,max=100"`
	Email         *string  `json:"email" binding:"omitempty,email"`
	Phone         *string  `json:"phone" binding:"omitempty,phone"`
	ScholarNumber *string  `json:"scholarNumber" binding:"omitempty,scholarno"`
	Branch        *string  `json:"branch" binding:"omitempty,max=100"`
	Degree        *string  `json:"degree" binding:"omitempty,max=50"`
	Batch         *int     `json:"batch" binding:"omitempty,gte=1950,lte=2100"`
	CGPA          *float64 `json:"cgpa" binding:"omitempty,gte=0,lte=10"`
	Gender        *string  `json:"gender" binding:"omitempty,oneof=male female other"`
	DateOfBirth   *string  `json:"dateOfBirth" binding:"omitempty,iso8601"`
	Address       *string  `json:"address" binding:"omitempty,max=300"`
	IsActive      *bool    `json:"isActive"`
}

// UpdateStudentStatusRequest approves or rejects a registration.
type UpdateStudentStatusRequest struct {
	Status  models.StudentStatus `json:"status" binding:"required,oneof=pending approved rejected"`
	Remarks string               `json:"remarks" binding:"omitempty,max=500"`
}

// ToModel builds a student from a registration. The password is the
// already-hashed value.
func (r *SignupRequest) ToModel(passwordHash string) (*models.Student, error) {
	s := &models.Student{
		Name:          strings.TrimSpace(r.Name),
		Email:         strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:         strings.TrimSpace(r.Phone),
		Password:      passwordHash,
		ScholarNumber: strings.ToUpper(strings.TrimSpace(r.ScholarNumber)),
		Branch:        strings.TrimSpace(r.Branch),
		Degree:        strings.TrimSpace(r.Degree),
		Batch:         r.Batch,
		CGPA:          r.CGPA,
		Gender:        r.Gender,
		Address:       strings.TrimSpace(r.Address),
		Role:          models.RoleStudent,
		Status:        models.StudentPending,
		IsActive:      true,
	}
	if r.DateOfBirth != nil {
		dob, err := parseOptionalDate(*r.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewFieldError("dateOfBirth", err.Error())
		}
		s.DateOfBirth = dob
	}
	return s, nil
}

// ToModel builds an admin-created student; status defaults to approved.
func (r *CreateStudentRequest) ToModel(passwordHash string) (*models.Student, error) {
	s, err := r.SignupRequest.ToModel(passwordHash)
	if err != nil {
		return nil, err
	}
	s.Status = models.StudentApproved
	if r.Status != "" {
		s.Status = r.Status
	}
	return s, nil
}

// ApplyTo copies the present fields onto an existing student.
func (r *UpdateStudentRequest) ApplyTo(s *models.Student) error {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&s.Name, r.Name)
	set(&s.Phone, r.Phone)
	set(&s.Branch, r.Branch)
	set(&s.Degree, r.Degree)
	set(&s.Address, r.Address)
	if r.Gender != nil {
		s.Gender = *r.Gender
	}
	if r.Email != nil {
		s.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.ScholarNumber != nil {
		s.ScholarNumber = strings.ToUpper(strings.TrimSpace(*r.ScholarNumber))
	}
	if r.Batch != nil {
		s.Batch = *r.Batch
	}
	if r.CGPA != nil {
		s.CGPA = r.CGPA
	}
	if r.DateOfBirth != nil {
		dob, err := parseOptionalDate(*r.DateOfBirth)
		if err != nil {
			return apperrors.NewFieldError("dateOfBirth", err.Error())
		}
		s.DateOfBirth = dob
	}
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	}
	return nil
}

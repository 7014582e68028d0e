package dto

import (
	"strings"

	"github.com/harish176/placement-portal/internal/app/models"
)

// CreateTPCMemberRequest adds a placement cell member.
type CreateTPCMemberRequest struct {
	Name          string             `json:"name" binding:"required,min=2,max=100"`
	Email         string             `json:"email" binding:"omitempty,email"`
	ContactNumber string             `json:"contactNumber" binding:"omitempty,phone"`
	Department    string             `json:"department" binding:"required,max=100"`
	Team          string             `json:"team" binding:"required,max=100"`
	Role          string             `json:"role" binding:"required,max=100"`
	Category      models.TPCCategory `json:"category" binding:"required,oneof=student faculty"`
	Sessions      []string           `json:"sessions" binding:"omitempty,dive,session"`
	ImageURL      string             `json:"imageUrl" binding:"omitempty,url"`
}

// UpdateTPCMemberRequest is a partial update.
type UpdateTPCMemberRequest struct {
	Name          *string             `json:"name" binding:"omitempty,min=2,max=100"`
	Email         *string             `json:"email" binding:"omitempty,email"`
	ContactNumber *string             `json:"contactNumber" binding:"omitempty,phone"`
	Department    *string             `json:"department" binding:"omitempty,max=100"`
	Team          *string             `json:"team" binding:"omitempty,max=100"`
	Role          *string             `json:"role" binding:"omitempty,max=100"`
	Category      *models.TPCCategory `json:"category" binding:"omitempty,oneof=student faculty"`
	Sessions      []string            `json:"sessions" binding:"omitempty,dive,session"`
	ImageURL      *string             `json:"imageUrl" binding:"omitempty,url"`
	IsActive      *bool               `json:"isActive"`
}

// ToModel builds a new active member.
func (r *CreateTPCMemberRequest) ToModel() *models.TPCMember {
	sessions := trimAll(r.Sessions)
	return &models.TPCMember{
		Name:          strings.TrimSpace(r.Name),
		Email:         strings.ToLower(strings.TrimSpace(r.Email)),
		ContactNumber: strings.TrimSpace(r.ContactNumber),
		Department:    strings.TrimSpace(r.Department),
		Team:          strings.TrimSpace(r.Team),
		Role:          strings.TrimSpace(r.Role),
		Category:      r.Category,
		Sessions:      sessions,
		ImageURL:      strings.TrimSpace(r.ImageURL),
		IsActive:      true,
	}
}

// ApplyTo copies the present fields onto an existing member.
func (r *UpdateTPCMemberRequest) ApplyTo(m *models.TPCMember) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&m.Name, r.Name)
	set(&m.ContactNumber, r.ContactNumber)
	set(&m.Department, r.Department)
	set(&m.Team, r.Team)
	set(&m.Role, r.Role)
	set(&m.ImageURL, r.ImageURL)
	if r.Email != nil {
		m.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Category != nil {
		m.Category = *r.Category
	}
	if r.Sessions != nil {
		m.Sessions = trimAll(r.Sessions)
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

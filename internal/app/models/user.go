package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is the collection-independent view of a login principal used by
// authentication: students and faculty (including admins) both reduce to it.
type Account struct {
	ID           primitive.ObjectID
	Name         string
	Email        string
	Role         Role
	Status       string
	IsActive     bool
	PasswordHash string
}

// Account returns the login view of a student.
func (s *Student) Account() Account {
	return Account{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		Role:         RoleStudent,
		Status:       string(s.Status),
		IsActive:     s.IsActive,
		PasswordHash: s.Password,
	}
}

// Account returns the login view of a faculty member or admin.
func (f *Faculty) Account() Account {
	role := f.Role
	if role == "" {
		role = RoleFaculty
	}
	return Account{
		ID:           f.ID,
		Name:         f.Name,
		Email:        f.Email,
		Role:         role,
		Status:       string(f.Status),
		IsActive:     f.IsActive,
		PasswordHash: f.Password,
	}
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Faculty is a document in the faculty collection. Administrators are
// faculty documents whose role is admin.
type Faculty struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Email          string             `json:"email" bson:"email"`
	ContactNumber  string             `json:"contactNumber" bson:"contactNumber"`
	Password       string             `json:"-" bson:"password"`
	EmployeeID     string             `json:"employeeId,omitempty" bson:"employeeId,omitempty"`
	Department     string             `json:"department" bson:"department"`
	Designation    string             `json:"designation,omitempty" bson:"designation,omitempty"`
	Qualification  string             `json:"qualification,omitempty" bson:"qualification,omitempty"`
	Specialization string             `json:"specialization,omitempty" bson:"specialization,omitempty"`
	Experience     int                `json:"experience" bson:"experience"`
	JoiningDate    *time.Time         `json:"joiningDate,omitempty" bson:"joiningDate,omitempty"`
	Role           Role               `json:"role" bson:"role"`
	Status         FacultyStatus      `json:"status" bson:"status"`
	IsActive       bool               `json:"isActive" bson:"isActive"`
	LastLogin      *time.Time         `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

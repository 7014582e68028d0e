package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is a document in the students collection.
type Student struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email" bson:"email"`
	Phone         string             `json:"phone" bson:"phone"`
	Password      string             `json:"-" bson:"password"`
	ScholarNumber string             `json:"scholarNumber" bson:"scholarNumber"`
	Branch        string             `json:"branch" bson:"branch"`
	Degree        string             `json:"degree,omitempty" bson:"degree,omitempty"`
	Batch         int                `json:"batch" bson:"batch"`
	CGPA          *float64           `json:"cgpa,omitempty" bson:"cgpa,omitempty"`
	Gender        string             `json:"gender,omitempty" bson:"gender,omitempty"`
	DateOfBirth   *time.Time         `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	Address       string             `json:"address,omitempty" bson:"address,omitempty"`
	Role          Role               `json:"role" bson:"role"`
	Status        StudentStatus      `json:"status" bson:"status"`
	StatusRemarks string             `json:"statusRemarks,omitempty" bson:"statusRemarks,omitempty"`
	IsActive      bool               `json:"isActive" bson:"isActive"`
	LastLogin     *time.Time         `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

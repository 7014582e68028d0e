package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TPCMember is a roster entry of the Training & Placement Cell.
type TPCMember struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email,omitempty" bson:"email,omitempty"`
	ContactNumber string             `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	Department    string             `json:"department" bson:"department"`
	Team          string             `json:"team" bson:"team"`
	Role          string             `json:"role" bson:"role"`
	Category      TPCCategory        `json:"category" bson:"category"`
	Sessions      []string           `json:"sessions" bson:"sessions"`
	ImageURL      string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	IsActive      bool               `json:"isActive" bson:"isActive"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

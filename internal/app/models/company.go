package models

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harish176/placement-portal/internal/pkg/money"
)

// ContactPerson is the recruiter contact of a company.
type ContactPerson struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// IsEmpty reports whether no contact field is set.
func (c *ContactPerson) IsEmpty() bool {
	return c == nil || (c.Name == "" && c.Email == "" && c.Phone == "")
}

// YearlyData is a company's recruiting terms for one academic year.
type YearlyData struct {
	Year            int           `json:"year" bson:"year"`
	Package         money.Amount  `json:"package" bson:"package"`
	AllowedBranches []string      `json:"allowedBranches" bson:"allowedBranches"`
	AllowedCourses  []string      `json:"allowedCourses" bson:"allowedCourses"`
	InterviewMode   InterviewMode `json:"interviewMode,omitempty" bson:"interviewMode,omitempty"`
	VisitDate       *time.Time    `json:"visitDate,omitempty" bson:"visitDate,omitempty"`
	RolesOffered    []string      `json:"rolesOffered,omitempty" bson:"rolesOffered,omitempty"`
	StudentsHired   int           `json:"studentsHired" bson:"studentsHired"`
}

// Company is a document in the companies collection.
type Company struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	Website       string             `json:"website,omitempty" bson:"website,omitempty"`
	Industry      string             `json:"industry,omitempty" bson:"industry,omitempty"`
	Location      string             `json:"location,omitempty" bson:"location,omitempty"`
	LogoURL       string             `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	ContactPerson *ContactPerson     `json:"contactPerson,omitempty" bson:"contactPerson,omitempty"`
	YearlyData    []YearlyData       `json:"yearlyData" bson:"yearlyData"`
	IsActive      bool               `json:"isActive" bson:"isActive"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// DuplicateYear returns the first year that appears more than once.
func DuplicateYear(entries []YearlyData) (int, bool) {
	seen := make(map[int]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Year]; ok {
			return e.Year, true
		}
		seen[e.Year] = struct{}{}
	}
	return 0, false
}

// SortYearlyData orders entries newest year first.
func SortYearlyData(entries []YearlyData) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Year > entries[j].Year })
}

package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harish176/placement-portal/internal/pkg/money"
)

// PackageBreakdown splits a package into components. Every component is optional.
type PackageBreakdown struct {
	Base   *money.Amount `json:"base,omitempty" bson:"base,omitempty"`
	Bonus  *money.Amount `json:"bonus,omitempty" bson:"bonus,omitempty"`
	Stocks *money.Amount `json:"stocks,omitempty" bson:"stocks,omitempty"`
	Other  *money.Amount `json:"other,omitempty" bson:"other,omitempty"`
}

func (b *PackageBreakdown) isEmpty() bool {
	return b == nil || (b.Base == nil && b.Bonus == nil && b.Stocks == nil && b.Other == nil)
}

// PackageDetails qualifies the headline package.
type PackageDetails struct {
	Currency  string            `json:"currency,omitempty" bson:"currency,omitempty"`
	Breakdown *PackageBreakdown `json:"breakdown,omitempty" bson:"breakdown,omitempty"`
}

// JobDetails describes the offered position.
type JobDetails struct {
	Role        string     `json:"role,omitempty" bson:"role,omitempty"`
	Location    string     `json:"location,omitempty" bson:"location,omitempty"`
	JoiningDate *time.Time `json:"joiningDate,omitempty" bson:"joiningDate,omitempty"`
	BondDetails string     `json:"bondDetails,omitempty" bson:"bondDetails,omitempty"`
}

func (j *JobDetails) isEmpty() bool {
	return j == nil || (j.Role == "" && j.Location == "" && j.JoiningDate == nil && j.BondDetails == "")
}

// Placement is a document in the placements collection. Student, Company and
// StudentName are derived by the placement linker.
type Placement struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	CompanyName    string              `json:"companyName" bson:"companyName"`
	Company        *primitive.ObjectID `json:"company,omitempty" bson:"company,omitempty"`
	ScholarNumber  string              `json:"scholarNumber" bson:"scholarNumber"`
	StudentName    string              `json:"studentName,omitempty" bson:"studentName,omitempty"`
	Student        *primitive.ObjectID `json:"student,omitempty" bson:"student,omitempty"`
	Branch         string              `json:"branch,omitempty" bson:"branch,omitempty"`
	Batch          *int                `json:"batch,omitempty" bson:"batch,omitempty"`
	PlacementType  PlacementType       `json:"placementType" bson:"placementType"`
	Package        money.Amount        `json:"package" bson:"package"`
	OfferDate      *time.Time          `json:"offerDate,omitempty" bson:"offerDate,omitempty"`
	PackageDetails *PackageDetails     `json:"packageDetails,omitempty" bson:"packageDetails,omitempty"`
	JobDetails     *JobDetails         `json:"jobDetails,omitempty" bson:"jobDetails,omitempty"`
	Remarks        string              `json:"remarks,omitempty" bson:"remarks,omitempty"`
	IsActive       bool                `json:"isActive" bson:"isActive"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// Normalize trims string leaves and drops optional parents left without any
// present child, so partial input never persists as empty objects.
func (p *Placement) Normalize() {
	p.CompanyName = strings.TrimSpace(p.CompanyName)
	p.ScholarNumber = strings.ToUpper(strings.TrimSpace(p.ScholarNumber))
	p.StudentName = strings.TrimSpace(p.StudentName)
	p.Branch = strings.TrimSpace(p.Branch)
	p.Remarks = strings.TrimSpace(p.Remarks)

	if d := p.PackageDetails; d != nil {
		d.Currency = strings.ToUpper(strings.TrimSpace(d.Currency))
		if d.Breakdown.isEmpty() {
			d.Breakdown = nil
		}
		if d.Currency == "" && d.Breakdown == nil {
			p.PackageDetails = nil
		}
	}

	if j := p.JobDetails; j != nil {
		j.Role = strings.TrimSpace(j.Role)
		j.Location = strings.TrimSpace(j.Location)
		j.BondDetails = strings.TrimSpace(j.BondDetails)
		if j.isEmpty() {
			p.JobDetails = nil
		}
	}
}

// CompanyOffers counts offers made by one company.
type CompanyOffers struct {
	CompanyName    string       `json:"companyName"`
	Offers         int64        `json:"offers"`
	HighestPackage money.Amount `json:"highestPackage"`
}

// PlacementStats summarises active placements, optionally for one batch.
type PlacementStats struct {
	Batch           *int                    `json:"batch,omitempty"`
	TotalPlacements int64                   `json:"totalPlacements"`
	StudentsPlaced  int64                   `json:"studentsPlaced"`
	HighestPackage  money.Amount            `json:"highestPackage"`
	AveragePackage  money.Amount            `json:"averagePackage"`
	LowestPackage   money.Amount            `json:"lowestPackage"`
	ByType          map[PlacementType]int64 `json:"byType"`
	TopCompanies    []CompanyOffers         `json:"topCompanies"`
}

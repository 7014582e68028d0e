package dto

import (
	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
	"github.com/harish176/placement-portal/internal/pkg/money"
)

// PackageBreakdownRequest carries optional package components.
type PackageBreakdownRequest struct {
	Base   OptionalAmount `json:"base"`
	Bonus  OptionalAmount `json:"bonus"`
	Stocks OptionalAmount `json:"stocks"`
	Other  OptionalAmount `json:"other"`
}

// PackageDetailsRequest qualifies the headline package.
type PackageDetailsRequest struct {
	Currency  string                   `json:"currency" binding:"omitempty,oneof=INR USD EUR GBP"`
	Breakdown *PackageBreakdownRequest `json:"breakdown"`
}

// JobDetailsRequest describes the offered position.
type JobDetailsRequest struct {
	Role        string `json:"role" binding:"omitempty,max=100"`
	Location    string `json:"location" binding:"omitempty,max=100"`
	JoiningDate string `json:"joiningDate" binding:"omitempty,iso8601"`
	BondDetails string `json:"bondDetails" binding:"omitempty,max=300"`
}

// CreatePlacementRequest records an offer. studentName is accepted but
// replaced by the linked student's name.
type CreatePlacementRequest struct {
	CompanyName    string                 `json:"companyName" binding:"required,notblank,max=200"`
	ScholarNumber  string                 `json:"scholarNumber" binding:"required,scholarno"`
	StudentName    string                 `json:"studentName" binding:"omitempty,max=100"`
	Branch         string                 `json:"branch" binding:"omitempty,max=100"`
	Batch          *int                   `json:"batch" binding:"omitempty,gte=1950,lte=2100"`
	PlacementType  models.PlacementType   `json:"placementType" binding:"required,oneof=FTE Internship Intern+FTE PPO"`
	Package        *money.Amount          `json:"package" binding:"required"`
	OfferDate      string                 `json:"offerDate" binding:"omitempty,iso8601"`
	PackageDetails *PackageDetailsRequest `json:"packageDetails"`
	JobDetails     *JobDetailsRequest     `json:"jobDetails"`
	Remarks        string                 `json:"remarks" binding:"omitempty,max=500"`
}

// UpdatePlacementRequest is a partial update. Nested objects, when present,
// replace the stored ones.
type UpdatePlacementRequest struct {
	CompanyName    *string                `json:"companyName" binding:"omitempty,notblank,max=200"`
	ScholarNumber  *string                `json:"scholarNumber" binding:"omitempty,scholarno"`
	StudentName    *string                `json:"studentName" binding:"omitempty,max=100"`
	Branch         *string                `json:"branch" binding:"omitempty,max=100"`
	Batch          *int                   `json:"batch" binding:"omitempty,gte=1950,lte=2100"`
	PlacementType  *models.PlacementType  `json:"placementType" binding:"omitempty,oneof=FTE Internship Intern+FTE PPO"`
	Package        *money.Amount          `json:"package"`
	OfferDate      *string                `json:"offerDate" binding:"omitempty,iso8601"`
	PackageDetails *PackageDetailsRequest `json:"packageDetails"`
	JobDetails     *JobDetailsRequest     `json:"jobDetails"`
	Remarks        *string                `json:"remarks" binding:"omitempty,max=500"`
	IsActive       *bool                  `json:"isActive"`
}

// Validate checks the money rules binding tags cannot express.
func (r *CreatePlacementRequest) Validate() error {
	return validatePlacementMoney(r.Package, r.PackageDetails)
}

// Validate checks the money rules binding tags cannot express.
func (r *UpdatePlacementRequest) Validate() error {
	return validatePlacementMoney(r.Package, r.PackageDetails)
}

func validatePlacementMoney(pkg *money.Amount, details *PackageDetailsRequest) error {
	fields := map[string]string{}
	if isNegative(pkg) {
		fields["package"] = "package must be a non-negative amount"
	}
	if details != nil && details.Breakdown != nil {
		b := details.Breakdown
		for name, v := range map[string]OptionalAmount{"base": b.Base, "bonus": b.Bonus, "stocks": b.Stocks, "other": b.Other} {
			if isNegative(v.Value) {
				fields["packageDetails.breakdown."+name] = name + " must be a non-negative amount"
			}
		}
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError("Validation failed", fields)
	}
	return nil
}

// ToModel builds an unlinked placement from the request.
func (r *CreatePlacementRequest) ToModel() (*models.Placement, error) {
	p := &models.Placement{
		CompanyName:   r.CompanyName,
		ScholarNumber: r.ScholarNumber,
		StudentName:   r.StudentName,
		Branch:        r.Branch,
		Batch:         r.Batch,
		PlacementType: r.PlacementType,
		Remarks:       r.Remarks,
		IsActive:      true,
	}
	if r.Package != nil {
		p.Package = *r.Package
	}
	offer, err := parseOptionalDate(r.OfferDate)
	if err != nil {
		return nil, apperrors.NewFieldError("offerDate", err.Error())
	}
	p.OfferDate = offer
	p.PackageDetails = r.PackageDetails.toModel()
	if p.JobDetails, err = r.JobDetails.toModel(); err != nil {
		return nil, err
	}
	return p, nil
}

// ApplyTo copies the present fields onto an existing placement.
func (r *UpdatePlacementRequest) ApplyTo(p *models.Placement) error {
	if r.CompanyName != nil {
		p.CompanyName = *r.CompanyName
	}
	if r.ScholarNumber != nil {
		p.ScholarNumber = *r.ScholarNumber
	}
	if r.StudentName != nil {
		p.StudentName = *r.StudentName
	}
	if r.Branch != nil {
		p.Branch = *r.Branch
	}
	if r.Batch != nil {
		p.Batch = r.Batch
	}
	if r.PlacementType != nil {
		p.PlacementType = *r.PlacementType
	}
	if r.Package != nil {
		p.Package = *r.Package
	}
	if r.OfferDate != nil {
		offer, err := parseOptionalDate(*r.OfferDate)
		if err != nil {
			return apperrors.NewFieldError("offerDate", err.Error())
		}
		p.OfferDate = offer
	}
	if r.PackageDetails != nil {
		p.PackageDetails = r.PackageDetails.toModel()
	}
	if r.JobDetails != nil {
		job, err := r.JobDetails.toModel()
		if err != nil {
			return err
		}
		p.JobDetails = job
	}
	if r.Remarks != nil {
		p.Remarks = *r.Remarks
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	return nil
}

func (d *PackageDetailsRequest) toModel() *models.PackageDetails {
	if d == nil {
		return nil
	}
	out := &models.PackageDetails{Currency: d.Currency}
	if b := d.Breakdown; b != nil {
		out.Breakdown = &models.PackageBreakdown{
			Base:   b.Base.Value,
			Bonus:  b.Bonus.Value,
			Stocks: b.Stocks.Value,
			Other:  b.Other.Value,
		}
	}
	return out
}

func (j *JobDetailsRequest) toModel() (*models.JobDetails, error) {
	if j == nil {
		return nil, nil
	}
	joining, err := parseOptionalDate(j.JoiningDate)
	if err != nil {
		return nil, apperrors.NewFieldError("jobDetails.joiningDate", err.Error())
	}
	return &models.JobDetails{
		Role:        j.Role,
		Location:    j.Location,
		JoiningDate: joining,
		BondDetails: j.BondDetails,
	}, nil
}

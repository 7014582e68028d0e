package dto

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
	"github.com/harish176/placement-portal/internal/pkg/money"
	"github.com/harish176/placement-portal/internal/pkg/validation"
)

func TestOptionalAmountTreatsEmptyAsAbsent(t *testing.T) {
	var b PackageBreakdownRequest
	require.NoError(t, json.Unmarshal([]byte(`{"base":"","bonus":null,"stocks":"250000","other":1500.5}`), &b))

	assert.Nil(t, b.Base.Value)
	assert.Nil(t, b.Bonus.Value)
	require.NotNil(t, b.Stocks.Value)
	assert.Equal(t, "250000", b.Stocks.Value.String())
	require.NotNil(t, b.Other.Value)
	assert.Equal(t, "1500.5", b.Other.Value.String())

	assert.Error(t, json.Unmarshal([]byte(`{"base":"abc"}`), &b))
}

func TestCreatePlacementToModelDropsEmptyParents(t *testing.T) {
	body := `{
		"companyName": " Acme ",
		"scholarNumber": "2021bcs042",
		"placementType": "FTE",
		"package": 1200000,
		"packageDetails": {"currency": "", "breakdown": {"base": "", "bonus": ""}},
		"jobDetails": {"role": "", "location": "", "joiningDate": ""}
	}`
	var req CreatePlacementRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.NoError(t, req.Validate())

	p, err := req.ToModel()
	require.NoError(t, err)
	p.Normalize()

	assert.Equal(t, "Acme", p.CompanyName)
	assert.Equal(t, "2021BCS042", p.ScholarNumber)
	assert.True(t, p.Package.Equal(money.FromInt(1200000).Decimal))
	assert.Nil(t, p.PackageDetails)
	assert.Nil(t, p.JobDetails)
	assert.True(t, p.IsActive)
}

func TestCreatePlacementKeepsPresentChildren(t *testing.T) {
	body := `{
		"companyName": "Acme",
		"scholarNumber": "S123",
		"placementType": "Intern+FTE",
		"package": "900000",
		"offerDate": "2024-08-01",
		"packageDetails": {"breakdown": {"base": 800000, "bonus": ""}},
		"jobDetails": {"location": "Pune", "joiningDate": "2025-07-01T00:00:00Z"}
	}`
	var req CreatePlacementRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	p, err := req.ToModel()
	require.NoError(t, err)
	p.Normalize()

	require.NotNil(t, p.OfferDate)
	assert.Equal(t, 2024, p.OfferDate.Year())
	require.NotNil(t, p.PackageDetails)
	require.NotNil(t, p.PackageDetails.Breakdown)
	assert.NotNil(t, p.PackageDetails.Breakdown.Base)
	assert.Nil(t, p.PackageDetails.Breakdown.Bonus)
	require.NotNil(t, p.JobDetails)
	assert.Equal(t, "Pune", p.JobDetails.Location)
	require.NotNil(t, p.JobDetails.JoiningDate)
}

func TestPlacementValidateRejectsNegativeMoney(t *testing.T) {
	neg := money.FromInt(-1)
	req := CreatePlacementRequest{
		Package: &neg,
		PackageDetails: &PackageDetailsRequest{
			Breakdown: &PackageBreakdownRequest{Bonus: Some(money.FromInt(-5))},
		},
	}

	err := req.Validate()
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "package")
	assert.Contains(t, appErr.Fields, "packageDetails.breakdown.bonus")
}

func TestUpdatePlacementApplyTo(t *testing.T) {
	batch := 2024
	p := &models.Placement{
		CompanyName:   "Acme",
		ScholarNumber: "S1",
		PlacementType: models.PlacementFTE,
		Package:       money.FromInt(10),
		JobDetails:    &models.JobDetails{Role: "SDE"},
		IsActive:      true,
	}
	newType := models.PlacementPPO
	emptyDate := ""
	req := UpdatePlacementRequest{
		PlacementType: &newType,
		Batch:         &batch,
		OfferDate:     &emptyDate,
	}

	require.NoError(t, req.ApplyTo(p))

	assert.Equal(t, models.PlacementPPO, p.PlacementType)
	assert.Equal(t, 2024, *p.Batch)
	assert.Nil(t, p.OfferDate)
	assert.Equal(t, "Acme", p.CompanyName)
	assert.Equal(t, "SDE", p.JobDetails.Role)
}

func TestCompanyValidateRejectsRepeatedYears(t *testing.T) {
	pkg := money.FromInt(500000)
	req := CreateCompanyRequest{
		Name: "Acme",
		YearlyData: []YearlyDataRequest{
			{Year: 2023, Package: &pkg},
			{Year: 2024, Package: &pkg},
			{Year: 2023, Package: &pkg},
		},
	}

	err := req.Validate()
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Fields, "yearlyData[2].year")
}

func TestCreateCompanyToModelSortsYears(t *testing.T) {
	pkg := money.FromInt(1)
	req := CreateCompanyRequest{
		Name:          " Acme ",
		ContactPerson: &ContactPersonRequest{},
		YearlyData: []YearlyDataRequest{
			{Year: 2022, Package: &pkg, AllowedBranches: []string{" CSE ", ""}},
			{Year: 2024, Package: &pkg},
		},
	}

	c, err := req.ToModel()
	require.NoError(t, err)

	assert.Equal(t, "Acme", c.Name)
	assert.Nil(t, c.ContactPerson)
	require.Len(t, c.YearlyData, 2)
	assert.Equal(t, 2024, c.YearlyData[0].Year)
	assert.Equal(t, []string{"CSE"}, c.YearlyData[1].AllowedBranches)
}

func TestPlacementBindingRejectsBlankCompanyName(t *testing.T) {
	require.NoError(t, validation.RegisterWithGin())

	tests := []struct {
		name    string
		target  interface{}
		body    string
		invalid bool
	}{
		{"create blank", &CreatePlacementRequest{}, `{"companyName":"   ","scholarNumber":"2021BCS042","placementType":"FTE","package":100}`, true},
		{"create present", &CreatePlacementRequest{}, `{"companyName":"Acme","scholarNumber":"2021BCS042","placementType":"FTE","package":100}`, false},
		{"update blank", &UpdatePlacementRequest{}, `{"companyName":"  "}`, true},
		{"update absent", &UpdatePlacementRequest{}, `{"remarks":"moved"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.JSON.BindBody([]byte(tt.body), tt.target)
			if !tt.invalid {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, "companyName", verrs[0].Field())
			assert.Equal(t, "notblank", verrs[0].Tag())
		})
	}
}

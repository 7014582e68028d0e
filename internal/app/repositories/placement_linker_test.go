package repositories

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
	"github.com/harish176/placement-portal/internal/pkg/money"
)

type fakeStudents struct {
	byScholar map[string]*models.Student
	err       error
	calls     int
}

func (f *fakeStudents) FindByScholarNumber(_ context.Context, scholarNumber string) (*models.Student, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.byScholar[strings.ToUpper(scholarNumber)]; ok {
		return s, nil
	}
	return nil, apperrors.NewNotFoundError("Student")
}

type fakeCompanies struct {
	companies []*models.Company
	err       error
}

func (f *fakeCompanies) FindByName(_ context.Context, name string) (*models.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.companies {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Company")
}

func newLinkerFixture() (*PlacementLinker, *models.Student, *models.Company) {
	student := &models.Student{ID: primitive.NewObjectID(), Name: "Asha Verma", ScholarNumber: "2021BCS042", Branch: "CSE", Batch: 2025}
	company := &models.Company{ID: primitive.NewObjectID(), Name: "Acme Corp"}
	linker := NewPlacementLinker(
		&fakeStudents{byScholar: map[string]*models.Student{student.ScholarNumber: student}},
		&fakeCompanies{companies: []*models.Company{company}},
	)
	return linker, student, company
}

func TestLinkOverwritesStudentNameAndCanonicalisesCompany(t *testing.T) {
	linker, student, company := newLinkerFixture()
	p := &models.Placement{
		CompanyName:   "  acme corp ",
		ScholarNumber: "2021bcs042",
		StudentName:   "Someone Else",
		PlacementType: models.PlacementFTE,
		Package:       money.FromInt(1200000),
	}

	require.NoError(t, linker.Link(context.Background(), p))

	require.NotNil(t, p.Student)
	assert.Equal(t, student.ID, *p.Student)
	assert.Equal(t, "Asha Verma", p.StudentName)
	require.NotNil(t, p.Company)
	assert.Equal(t, company.ID, *p.Company)
	assert.Equal(t, "Acme Corp", p.CompanyName)
	assert.Equal(t, "CSE", p.Branch)
	require.NotNil(t, p.Batch)
	assert.Equal(t, 2025, *p.Batch)
}

func TestLinkUnknownScholarIsFatal(t *testing.T) {
	linker, _, _ := newLinkerFixture()
	p := &models.Placement{CompanyName: "Acme", ScholarNumber: "NOPE123", PlacementType: models.PlacementFTE}

	err := linker.Link(context.Background(), p)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
	assert.Nil(t, p.Student)
	assert.Nil(t, p.Company)
}

func TestLinkUnknownCompanyIsNotFatal(t *testing.T) {
	linker, _, _ := newLinkerFixture()
	stale := primitive.NewObjectID()
	p := &models.Placement{CompanyName: "Globex", ScholarNumber: "2021BCS042", Company: &stale}

	require.NoError(t, linker.Link(context.Background(), p))

	assert.Nil(t, p.Company)
	assert.Equal(t, "Globex", p.CompanyName)
	assert.NotNil(t, p.Student)
}

func TestLinkDoesNotMatchCompanySubstrings(t *testing.T) {
	linker, _, _ := newLinkerFixture()
	p := &models.Placement{CompanyName: "Acme", ScholarNumber: "2021BCS042"}

	require.NoError(t, linker.Link(context.Background(), p))
	assert.Nil(t, p.Company)
}

func TestLinkIsIdempotent(t *testing.T) {
	linker, _, _ := newLinkerFixture()
	p := &models.Placement{CompanyName: "ACME CORP", ScholarNumber: "2021BCS042", Remarks: " ok "}

	require.NoError(t, linker.Link(context.Background(), p))
	first := *p
	firstStudent, firstCompany := *p.Student, *p.Company

	require.NoError(t, linker.Link(context.Background(), p))

	assert.Equal(t, firstStudent, *p.Student)
	assert.Equal(t, firstCompany, *p.Company)
	assert.Equal(t, first.StudentName, p.StudentName)
	assert.Equal(t, first.CompanyName, p.CompanyName)
	assert.Equal(t, "ok", p.Remarks)
}

func TestLinkPropagatesLookupFailures(t *testing.T) {
	boom := errors.New("connection reset")
	linker := NewPlacementLinker(&fakeStudents{err: boom}, &fakeCompanies{})

	err := linker.Link(context.Background(), &models.Placement{ScholarNumber: "S1", CompanyName: "Acme Corp"})
	assert.ErrorIs(t, err, boom)

	_, _, company := newLinkerFixture()
	students := &fakeStudents{byScholar: map[string]*models.Student{"S1": {ID: primitive.NewObjectID(), Name: "x"}}}
	linker = NewPlacementLinker(students, &fakeCompanies{companies: []*models.Company{company}, err: boom})
	err = linker.Link(context.Background(), &models.Placement{ScholarNumber: "S1", CompanyName: "Acme Corp"})
	assert.ErrorIs(t, err, boom)
}

func TestLinkDropsEmptyNestedParents(t *testing.T) {
	linker, _, _ := newLinkerFixture()
	p := &models.Placement{
		CompanyName:    "Acme Corp",
		ScholarNumber:  "2021BCS042",
		PackageDetails: &models.PackageDetails{Breakdown: &models.PackageBreakdown{}},
		JobDetails:     &models.JobDetails{Role: "  "},
	}

	require.NoError(t, linker.Link(context.Background(), p))

	assert.Nil(t, p.PackageDetails)
	assert.Nil(t, p.JobDetails)
}

func TestLinkRejectsBlankRequiredFields(t *testing.T) {
	linked := primitive.NewObjectID()

	tests := []struct {
		name      string
		placement models.Placement
		field     string
	}{
		{"blank company on create", models.Placement{CompanyName: "   ", ScholarNumber: "2021BCS042"}, "companyName"},
		{"blank company on linked placement", models.Placement{CompanyName: "  ", ScholarNumber: "2021BCS042", Company: &linked}, "companyName"},
		{"blank scholar number", models.Placement{CompanyName: "Acme Corp", ScholarNumber: " "}, "scholarNumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			students := &fakeStudents{}
			linker := NewPlacementLinker(students, &fakeCompanies{})
			p := tt.placement

			err := linker.Link(context.Background(), &p)

			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.KindValidation, appErr.Kind)
			assert.Contains(t, appErr.Fields, tt.field)
			assert.Zero(t, students.calls)
			if tt.field == "companyName" {
				assert.Nil(t, p.Company)
				assert.Empty(t, p.CompanyName)
			}
		})
	}
}

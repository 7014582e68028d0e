package repositories

import (
	"context"

	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
)

// StudentLookup resolves scholar numbers.
type StudentLookup interface {
	FindByScholarNumber(ctx context.Context, scholarNumber string) (*models.Student, error)
}

// CompanyLookup resolves company names case-insensitively.
type CompanyLookup interface {
	FindByName(ctx context.Context, name string) (*models.Company, error)
}

// PlacementLinker ties a placement to its student and company records before
// it is written. Running it twice on the same placement changes nothing.
type PlacementLinker struct {
	students  StudentLookup
	companies CompanyLookup
}

// NewPlacementLinker creates a linker over the given lookups.
func NewPlacementLinker(students StudentLookup, companies CompanyLookup) *PlacementLinker {
	return &PlacementLinker{students: students, companies: companies}
}

// Link normalizes p and resolves its references.
//
// A blank company name or scholar number is a validation error; a blank
// company name also drops any company reference. An unknown scholar number
// fails with a student-not-found error and leaves p's references untouched.
// An unknown company name is not an error: the placement is kept with no
// company reference.
func (l *PlacementLinker) Link(ctx context.Context, p *models.Placement) error {
	p.Normalize()

	if p.CompanyName == "" {
		p.Company = nil
		return apperrors.NewFieldError("companyName", "companyName is required")
	}
	if p.ScholarNumber == "" {
		return apperrors.NewFieldError("scholarNumber", "scholarNumber is required")
	}

	student, err := l.students.FindByScholarNumber(ctx, p.ScholarNumber)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return apperrors.NewStudentNotFoundError(p.ScholarNumber)
		}
		return err
	}
	studentID := student.ID
	p.Student = &studentID
	p.StudentName = student.Name
	if p.Branch == "" {
		p.Branch = student.Branch
	}
	if p.Batch == nil && student.Batch != 0 {
		batch := student.Batch
		p.Batch = &batch
	}

	company, err := l.companies.FindByName(ctx, p.CompanyName)
	switch {
	case err == nil:
		id := company.ID
		p.Company = &id
		p.CompanyName = company.Name
	case apperrors.KindOf(err) == apperrors.KindNotFound:
		p.Company = nil
	default:
		return err
	}

	return nil
}

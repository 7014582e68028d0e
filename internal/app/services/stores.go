package services

import (
	"context"
	"time"

	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/app/repositories"
)

// The stores below are the repository methods services depend on. The
// concrete repositories satisfy them; tests substitute mocks.

type StudentStore interface {
	List(ctx context.Context, filter repositories.StudentFilter, page, limit int) ([]models.Student, int64, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	Create(ctx context.Context, s *models.Student) error
	Update(ctx context.Context, s *models.Student) error
	UpdateStatus(ctx context.Context, id string, status models.StudentStatus, remarks string) (*models.Student, error)
	UpdatePassword(ctx context.Context, id string, hash string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
}

type FacultyStore interface {
	List(ctx context.Context, filter repositories.FacultyFilter, page, limit int) ([]models.Faculty, int64, error)
	GetByID(ctx context.Context, id string) (*models.Faculty, error)
	GetByEmail(ctx context.Context, email string) (*models.Faculty, error)
	Create(ctx context.Context, f *models.Faculty) error
	Update(ctx context.Context, f *models.Faculty) error
	UpdateStatus(ctx context.Context, id string, status models.FacultyStatus) (*models.Faculty, error)
	UpdatePassword(ctx context.Context, id string, hash string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
}

type CompanyStore interface {
	List(ctx context.Context, filter repositories.CompanyFilter, page, limit int) ([]models.Company, int64, error)
	GetByID(ctx context.Context, id string) (*models.Company, error)
	Create(ctx context.Context, c *models.Company) error
	Update(ctx context.Context, c *models.Company) error
	AddYearlyData(ctx context.Context, id string, entry models.YearlyData) (*models.Company, error)
	UpdateYearlyData(ctx context.Context, id string, year int, entry models.YearlyData) (*models.Company, error)
	DeleteYearlyData(ctx context.Context, id string, year int) (*models.Company, error)
	UpdateLogo(ctx context.Context, id string, logoURL string) (*models.Company, error)
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
}

type PlacementStore interface {
	List(ctx context.Context, filter repositories.PlacementFilter, page, limit int) ([]models.Placement, int64, error)
	GetByID(ctx context.Context, id string) (*models.Placement, error)
	Create(ctx context.Context, p *models.Placement) error
	Update(ctx context.Context, p *models.Placement) error
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
	Stats(ctx context.Context, batch *int) (*models.PlacementStats, error)
}

type TPCMemberStore interface {
	List(ctx context.Context, filter repositories.TPCMemberFilter, page, limit int) ([]models.TPCMember, int64, error)
	GetByID(ctx context.Context, id string) (*models.TPCMember, error)
	Create(ctx context.Context, m *models.TPCMember) error
	Update(ctx context.Context, m *models.TPCMember) error
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
}

// LoginObserver records login outcomes, e.g. as metrics.
type LoginObserver interface {
	ObserveLogin(role string, ok bool)
}

type noopLoginObserver struct{}

func (noopLoginObserver) ObserveLogin(string, bool) {}

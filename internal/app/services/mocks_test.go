package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/app/repositories"
)

type mockStudentStore struct{ mock.Mock }

func (m *mockStudentStore) List(ctx context.Context, filter repositories.StudentFilter, page, limit int) ([]models.Student, int64, error) {
	args := m.Called(ctx, filter, page, limit)
	items, _ := args.Get(0).([]models.Student)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockStudentStore) GetByID(ctx context.Context, id string) (*models.Student, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*models.Student)
	return s, args.Error(1)
}

func (m *mockStudentStore) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	args := m.Called(ctx, email)
	s, _ := args.Get(0).(*models.Student)
	return s, args.Error(1)
}

func (m *mockStudentStore) Create(ctx context.Context, s *models.Student) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockStudentStore) Update(ctx context.Context, s *models.Student) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockStudentStore) UpdateStatus(ctx context.Context, id string, status models.StudentStatus, remarks string) (*models.Student, error) {
	args := m.Called(ctx, id, status, remarks)
	s, _ := args.Get(0).(*models.Student)
	return s, args.Error(1)
}

func (m *mockStudentStore) UpdatePassword(ctx context.Context, id string, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *mockStudentStore) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *mockStudentStore) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStudentStore) Restore(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStudentStore) HardDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockFacultyStore struct{ mock.Mock }

func (m *mockFacultyStore) List(ctx context.Context, filter repositories.FacultyFilter, page, limit int) ([]models.Faculty, int64, error) {
	args := m.Called(ctx, filter, page, limit)
	items, _ := args.Get(0).([]models.Faculty)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockFacultyStore) GetByID(ctx context.Context, id string) (*models.Faculty, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(*models.Faculty)
	return f, args.Error(1)
}

func (m *mockFacultyStore) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	args := m.Called(ctx, email)
	f, _ := args.Get(0).(*models.Faculty)
	return f, args.Error(1)
}

func (m *mockFacultyStore) Create(ctx context.Context, f *models.Faculty) error {
	return m.Called(ctx, f).Error(0)
}

func (m *mockFacultyStore) Update(ctx context.Context, f *models.Faculty) error {
	return m.Called(ctx, f).Error(0)
}

func (m *mockFacultyStore) UpdateStatus(ctx context.Context, id string, status models.FacultyStatus) (*models.Faculty, error) {
	args := m.Called(ctx, id, status)
	f, _ := args.Get(0).(*models.Faculty)
	return f, args.Error(1)
}

func (m *mockFacultyStore) UpdatePassword(ctx context.Context, id string, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *mockFacultyStore) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *mockFacultyStore) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockFacultyStore) Restore(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockFacultyStore) HardDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCompanyStore struct{ mock.Mock }

func (m *mockCompanyStore) List(ctx context.Context, filter repositories.CompanyFilter, page, limit int) ([]models.Company, int64, error) {
	args := m.Called(ctx, filter, page, limit)
	items, _ := args.Get(0).([]models.Company)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockCompanyStore) GetByID(ctx context.Context, id string) (*models.Company, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Company)
	return c, args.Error(1)
}

func (m *mockCompanyStore) Create(ctx context.Context, c *models.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCompanyStore) Update(ctx context.Context, c *models.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCompanyStore) AddYearlyData(ctx context.Context, id string, entry models.YearlyData) (*models.Company, error) {
	args := m.Called(ctx, id, entry)
	c, _ := args.Get(0).(*models.Company)
	return c, args.Error(1)
}

func (m *mockCompanyStore) UpdateYearlyData(ctx context.Context, id string, year int, entry models.YearlyData) (*models.Company, error) {
	args := m.Called(ctx, id, year, entry)
	c, _ := args.Get(0).(*models.Company)
	return c, args.Error(1)
}

func (m *mockCompanyStore) DeleteYearlyData(ctx context.Context, id string, year int) (*models.Company, error) {
	args := m.Called(ctx, id, year)
	c, _ := args.Get(0).(*models.Company)
	return c, args.Error(1)
}

func (m *mockCompanyStore) UpdateLogo(ctx context.Context, id string, logoURL string) (*models.Company, error) {
	args := m.Called(ctx, id, logoURL)
	c, _ := args.Get(0).(*models.Company)
	return c, args.Error(1)
}

func (m *mockCompanyStore) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCompanyStore) Restore(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCompanyStore) HardDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockPlacementStore struct{ mock.Mock }

func (m *mockPlacementStore) List(ctx context.Context, filter repositories.PlacementFilter, page, limit int) ([]models.Placement, int64, error) {
	args := m.Called(ctx, filter, page, limit)
	items, _ := args.Get(0).([]models.Placement)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockPlacementStore) GetByID(ctx context.Context, id string) (*models.Placement, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Placement)
	return p, args.Error(1)
}

func (m *mockPlacementStore) Create(ctx context.Context, p *models.Placement) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPlacementStore) Update(ctx context.Context, p *models.Placement) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPlacementStore) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPlacementStore) Restore(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPlacementStore) HardDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPlacementStore) Stats(ctx context.Context, batch *int) (*models.PlacementStats, error) {
	args := m.Called(ctx, batch)
	s, _ := args.Get(0).(*models.PlacementStats)
	return s, args.Error(1)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendRegistrationReceived(toEmail, toName string) error {
	return m.Called(toEmail, toName).Error(0)
}

func (m *mockMailer) SendStatusChanged(toEmail, toName, status, remarks string) error {
	return m.Called(toEmail, toName, status, remarks).Error(0)
}

type mockFiles struct{ mock.Mock }

func (m *mockFiles) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	args := m.Called(fileHeader, subPath)
	return args.String(0), args.Error(1)
}

func (m *mockFiles) DeleteFile(fileURL string) error {
	return m.Called(fileURL).Error(0)
}

type recordingObserver struct {
	outcomes []bool
}

func (r *recordingObserver) ObserveLogin(_ string, ok bool) {
	r.outcomes = append(r.outcomes, ok)
}

package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/app/models/dto"
	"github.com/harish176/placement-portal/internal/app/repositories"
	pkgAuth "github.com/harish176/placement-portal/internal/pkg/auth"
	"github.com/harish176/placement-portal/internal/pkg/helpers"
)

// FacultyService defines the interface for faculty-related operations
type FacultyService interface {
	ListFaculty(ctx context.Context, filter repositories.FacultyFilter, page, limit int) ([]models.Faculty, dto.PaginationInfo, error)
	GetFacultyByID(ctx context.Context, id string) (*models.Faculty, error)
	CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error)
	UpdateFaculty(ctx context.Context, id string, req *dto.UpdateFacultyRequest) (*models.Faculty, error)
	UpdateFacultyStatus(ctx context.Context, id string, req *dto.UpdateFacultyStatusRequest) (*models.Faculty, error)
	DeleteFaculty(ctx context.Context, id string) error
	RestoreFaculty(ctx context.Context, id string) error
	DeleteFacultyPermanently(ctx context.Context, id string) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	faculty FacultyStore
	hasher  *pkgAuth.PasswordHasher
	logger  zerolog.Logger
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(faculty FacultyStore, hasher *pkgAuth.PasswordHasher, logger zerolog.Logger) FacultyService {
	return &facultyServiceImpl{
		faculty: faculty,
		hasher:  hasher,
		logger:  logger,
	}
}

func (s *facultyServiceImpl) ListFaculty(ctx context.Context, filter repositories.FacultyFilter, page, limit int) ([]models.Faculty, dto.PaginationInfo, error) {
	items, total, err := s.faculty.List(ctx, filter, page, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing faculty: %w", err)
	}
	return items, helpers.NewPaginationInfo(total, page, limit), nil
}

func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id string) (*models.Faculty, error) {
	return s.faculty.GetByID(ctx, id)
}

// CreateFaculty creates a faculty member or, with role admin, an administrator.
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	f, err := req.ToModel(hash)
	if err != nil {
		return nil, err
	}
	if err := s.faculty.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("error creating faculty: %w", err)
	}
	s.logger.Info().Str("facultyID", f.ID.Hex()).Str("role", string(f.Role)).Msg("Faculty created")
	return f, nil
}

func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, id string, req *dto.UpdateFacultyRequest) (*models.Faculty, error) {
	f, err := s.faculty.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.ApplyTo(f); err != nil {
		return nil, err
	}
	if err := s.faculty.Update(ctx, f); err != nil {
		return nil, fmt.Errorf("error updating faculty: %w", err)
	}
	return f, nil
}

func (s *facultyServiceImpl) UpdateFacultyStatus(ctx context.Context, id string, req *dto.UpdateFacultyStatusRequest) (*models.Faculty, error) {
	f, err := s.faculty.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("facultyID", id).Str("status", string(req.Status)).Msg("Faculty status updated")
	return f, nil
}

func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id string) error {
	return s.faculty.SoftDelete(ctx, id)
}

func (s *facultyServiceImpl) RestoreFaculty(ctx context.Context, id string) error {
	return s.faculty.Restore(ctx, id)
}

func (s *facultyServiceImpl) DeleteFacultyPermanently(ctx context.Context, id string) error {
	if err := s.faculty.HardDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Warn().Str("facultyID", id).Msg("Faculty permanently deleted")
	return nil
}

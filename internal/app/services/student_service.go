package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/app/models/dto"
	"github.com/harish176/placement-portal/internal/app/repositories"
	pkgAuth "github.com/harish176/placement-portal/internal/pkg/auth"
	"github.com/harish176/placement-portal/internal/pkg/email"
	"github.com/harish176/placement-portal/internal/pkg/helpers"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	ListStudents(ctx context.Context, filter repositories.StudentFilter, page, limit int) ([]models.Student, dto.PaginationInfo, error)
	GetStudentByID(ctx context.Context, id string) (*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*models.Student, error)
	UpdateStudentStatus(ctx context.Context, id string, req *dto.UpdateStudentStatusRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
	RestoreStudent(ctx context.Context, id string) error
	DeleteStudentPermanently(ctx context.Context, id string) error
	ListStudentPlacements(ctx context.Context, id string, page, limit int) ([]models.Placement, dto.PaginationInfo, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	students   StudentStore
	placements PlacementStore
	hasher     *pkgAuth.PasswordHasher
	mailer     email.EmailService
	logger     zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(
	students StudentStore,
	placements PlacementStore,
	hasher *pkgAuth.PasswordHasher,
	mailer email.EmailService,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		students:   students,
		placements: placements,
		hasher:     hasher,
		mailer:     mailer,
		logger:     logger,
	}
}

func (s *studentServiceImpl) ListStudents(ctx context.Context, filter repositories.StudentFilter, page, limit int) ([]models.Student, dto.PaginationInfo, error) {
	items, total, err := s.students.List(ctx, filter, page, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing students: %w", err)
	}
	return items, helpers.NewPaginationInfo(total, page, limit), nil
}

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// CreateStudent creates an approved student unless the request says otherwise.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	student, err := req.ToModel(hash)
	if err != nil {
		return nil, err
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}
	s.logger.Info().Str("studentID", student.ID.Hex()).Msg("Student created")
	return student, nil
}

func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.ApplyTo(student); err != nil {
		return nil, err
	}
	if err := s.students.Update(ctx, student); err != nil {
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return student, nil
}

// UpdateStudentStatus changes the approval state and notifies the student.
// A failed notification does not undo the change.
func (s *studentServiceImpl) UpdateStudentStatus(ctx context.Context, id string, req *dto.UpdateStudentStatusRequest) (*models.Student, error) {
	student, err := s.students.UpdateStatus(ctx, id, req.Status, req.Remarks)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendStatusChanged(student.Email, student.Name, string(student.Status), req.Remarks); err != nil {
		s.logger.Warn().Err(err).Str("studentID", id).Msg("Failed to send status email")
	}
	s.logger.Info().Str("studentID", id).Str("status", string(req.Status)).Msg("Student status updated")
	return student, nil
}

func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id string) error {
	return s.students.SoftDelete(ctx, id)
}

func (s *studentServiceImpl) RestoreStudent(ctx context.Context, id string) error {
	return s.students.Restore(ctx, id)
}

func (s *studentServiceImpl) DeleteStudentPermanently(ctx context.Context, id string) error {
	if err := s.students.HardDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Warn().Str("studentID", id).Msg("Student permanently deleted")
	return nil
}

// ListStudentPlacements lists the active placements linked to a student.
func (s *studentServiceImpl) ListStudentPlacements(ctx context.Context, id string, page, limit int) ([]models.Placement, dto.PaginationInfo, error) {
	if _, err := s.students.GetByID(ctx, id); err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	filter := repositories.PlacementFilter{StudentID: id}
	filter.SortBy = "offerDate"
	items, total, err := s.placements.List(ctx, filter, page, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing placements: %w", err)
	}
	return items, helpers.NewPaginationInfo(total, page, limit), nil
}

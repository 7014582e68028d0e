package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/app/models/dto"
	"github.com/harish176/placement-portal/internal/app/repositories"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
	"github.com/harish176/placement-portal/internal/pkg/filestorage"
	"github.com/harish176/placement-portal/internal/pkg/helpers"
)

const (
	MaxLogoSize   = 2 << 20
	logoSubPath   = "companies"
	LogoFormField = "logo"
)

// LogoExtensions are the accepted logo file types.
var LogoExtensions = []string{".png", ".jpg", ".jpeg", ".webp", ".svg"}

// CompanyService defines the interface for company-related operations
type CompanyService interface {
	ListCompanies(ctx context.Context, filter repositories.CompanyFilter, page, limit int) ([]models.Company, dto.PaginationInfo, error)
	GetCompanyByID(ctx context.Context, id string) (*models.Company, error)
	CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error)
	UpdateCompany(ctx context.Context, id string, req *dto.UpdateCompanyRequest) (*models.Company, error)
	DeleteCompany(ctx context.Context, id string) error
	RestoreCompany(ctx context.Context, id string) error
	DeleteCompanyPermanently(ctx context.Context, id string) error
	AddYearlyData(ctx context.Context, id string, req *dto.YearlyDataRequest) (*models.Company, error)
	UpdateYearlyData(ctx context.Context, id string, year int, req *dto.YearlyDataRequest) (*models.Company, error)
	DeleteYearlyData(ctx context.Context, id string, year int) (*models.Company, error)
	UploadLogo(ctx context.Context, id string, file *multipart.FileHeader) (*models.Company, error)
}

// companyServiceImpl implements the CompanyService interface
type companyServiceImpl struct {
	companies CompanyStore
	files     filestorage.FileStorage
	logger    zerolog.Logger
}

// NewCompanyService creates a new company service instance
func NewCompanyService(companies CompanyStore, files filestorage.FileStorage, logger zerolog.Logger) CompanyService {
	return &companyServiceImpl{
		companies: companies,
		files:     files,
		logger:    logger,
	}
}

func (s *companyServiceImpl) ListCompanies(ctx context.Context, filter repositories.CompanyFilter, page, limit int) ([]models.Company, dto.PaginationInfo, error) {
	items, total, err := s.companies.List(ctx, filter, page, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing companies: %w", err)
	}
	return items, helpers.NewPaginationInfo(total, page, limit), nil
}

func (s *companyServiceImpl) GetCompanyByID(ctx context.Context, id string) (*models.Company, error) {
	return s.companies.GetByID(ctx, id)
}

func (s *companyServiceImpl) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	if err := s.companies.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("error creating company: %w", err)
	}
	s.logger.Info().Str("companyID", c.ID.Hex()).Str("name", c.Name).Msg("Company created")
	return c, nil
}

func (s *companyServiceImpl) UpdateCompany(ctx context.Context, id string, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.ApplyTo(c); err != nil {
		return nil, err
	}
	if err := s.companies.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("error updating company: %w", err)
	}
	return c, nil
}

func (s *companyServiceImpl) DeleteCompany(ctx context.Context, id string) error {
	return s.companies.SoftDelete(ctx, id)
}

func (s *companyServiceImpl) RestoreCompany(ctx context.Context, id string) error {
	return s.companies.Restore(ctx, id)
}

// DeleteCompanyPermanently removes the company and then its logo file.
func (s *companyServiceImpl) DeleteCompanyPermanently(ctx context.Context, id string) error {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.companies.HardDelete(ctx, id); err != nil {
		return err
	}
	s.removeFile(c.LogoURL)
	s.logger.Warn().Str("companyID", id).Msg("Company permanently deleted")
	return nil
}

func (s *companyServiceImpl) AddYearlyData(ctx context.Context, id string, req *dto.YearlyDataRequest) (*models.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	entry, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	return s.companies.AddYearlyData(ctx, id, entry)
}

func (s *companyServiceImpl) UpdateYearlyData(ctx context.Context, id string, year int, req *dto.YearlyDataRequest) (*models.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	entry, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	return s.companies.UpdateYearlyData(ctx, id, year, entry)
}

func (s *companyServiceImpl) DeleteYearlyData(ctx context.Context, id string, year int) (*models.Company, error) {
	return s.companies.DeleteYearlyData(ctx, id, year)
}

// UploadLogo stores a new logo and replaces the old one. The new file is
// removed again if the company cannot be updated.
func (s *companyServiceImpl) UploadLogo(ctx context.Context, id string, file *multipart.FileHeader) (*models.Company, error) {
	if err := filestorage.ValidateUpload(file, MaxLogoSize, LogoExtensions...); err != nil {
		return nil, apperrors.NewFieldError(LogoFormField, err.Error())
	}
	current, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.files.SaveFileWithPath(file, logoSubPath)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	updated, err := s.companies.UpdateLogo(ctx, id, url)
	if err != nil {
		s.removeFile(url)
		return nil, err
	}

	if current.LogoURL != "" && current.LogoURL != url {
		s.removeFile(current.LogoURL)
	}
	s.logger.Info().Str("companyID", id).Str("logoUrl", url).Msg("Company logo updated")
	return updated, nil
}

func (s *companyServiceImpl) removeFile(url string) {
	if url == "" {
		return
	}
	if err := s.files.DeleteFile(url); err != nil {
		s.logger.Warn().Err(err).Str("url", url).Msg("Failed to delete file")
	}
}

package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/app/models/dto"
	"github.com/harish176/placement-portal/internal/app/repositories"
	"github.com/harish176/placement-portal/internal/pkg/helpers"
)

// PlacementService defines the interface for placement-related operations
type PlacementService interface {
	ListPlacements(ctx context.Context, filter repositories.PlacementFilter, page, limit int) ([]models.Placement, dto.PaginationInfo, error)
	GetPlacementByID(ctx context.Context, id string) (*models.Placement, error)
	CreatePlacement(ctx context.Context, req *dto.CreatePlacementRequest) (*models.Placement, error)
	UpdatePlacement(ctx context.Context, id string, req *dto.UpdatePlacementRequest) (*models.Placement, error)
	DeletePlacement(ctx context.Context, id string) error
	RestorePlacement(ctx context.Context, id string) error
	DeletePlacementPermanently(ctx context.Context, id string) error
	GetStats(ctx context.Context, batch *int) (*models.PlacementStats, error)
}

// placementServiceImpl implements the PlacementService interface. Linking
// happens inside the store's write path.
type placementServiceImpl struct {
	placements PlacementStore
	logger     zerolog.Logger
}

// NewPlacementService creates a new placement service instance
func NewPlacementService(placements PlacementStore, logger zerolog.Logger) PlacementService {
	return &placementServiceImpl{placements: placements, logger: logger}
}

func (s *placementServiceImpl) ListPlacements(ctx context.Context, filter repositories.PlacementFilter, page, limit int) ([]models.Placement, dto.PaginationInfo, error) {
	items, total, err := s.placements.List(ctx, filter, page, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing placements: %w", err)
	}
	return items, helpers.NewPaginationInfo(total, page, limit), nil
}

func (s *placementServiceImpl) GetPlacementByID(ctx context.Context, id string) (*models.Placement, error) {
	return s.placements.GetByID(ctx, id)
}

func (s *placementServiceImpl) CreatePlacement(ctx context.Context, req *dto.CreatePlacementRequest) (*models.Placement, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	if err := s.placements.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("error creating placement: %w", err)
	}
	s.logger.Info().
		Str("placementID", p.ID.Hex()).
		Str("scholarNumber", p.ScholarNumber).
		Str("companyName", p.CompanyName).
		Bool("companyLinked", p.Company != nil).
		Msg("Placement created")
	return p, nil
}

func (s *placementServiceImpl) UpdatePlacement(ctx context.Context, id string, req *dto.UpdatePlacementRequest) (*models.Placement, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p, err := s.placements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.ApplyTo(p); err != nil {
		return nil, err
	}
	if err := s.placements.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("error updating placement: %w", err)
	}
	return p, nil
}

func (s *placementServiceImpl) DeletePlacement(ctx context.Context, id string) error {
	return s.placements.SoftDelete(ctx, id)
}

func (s *placementServiceImpl) RestorePlacement(ctx context.Context, id string) error {
	return s.placements.Restore(ctx, id)
}

func (s *placementServiceImpl) DeletePlacementPermanently(ctx context.Context, id string) error {
	if err := s.placements.HardDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Warn().Str("placementID", id).Msg("Placement permanently deleted")
	return nil
}

// GetStats summarizes active placements, optionally for one batch.
func (s *placementServiceImpl) GetStats(ctx context.Context, batch *int) (*models.PlacementStats, error) {
	stats, err := s.placements.Stats(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("error computing placement stats: %w", err)
	}
	return stats, nil
}

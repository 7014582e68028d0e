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

// TPCMemberService manages the placement cell roster.
type TPCMemberService interface {
	ListMembers(ctx context.Context, filter repositories.TPCMemberFilter, page, limit int) ([]models.TPCMember, dto.PaginationInfo, error)
	GetMemberByID(ctx context.Context, id string) (*models.TPCMember, error)
	CreateMember(ctx context.Context, req *dto.CreateTPCMemberRequest) (*models.TPCMember, error)
	UpdateMember(ctx context.Context, id string, req *dto.UpdateTPCMemberRequest) (*models.TPCMember, error)
	DeleteMember(ctx context.Context, id string) error
	RestoreMember(ctx context.Context, id string) error
	DeleteMemberPermanently(ctx context.Context, id string) error
}

type tpcMemberServiceImpl struct {
	members TPCMemberStore
	logger  zerolog.Logger
}

func NewTPCMemberService(members TPCMemberStore, logger zerolog.Logger) TPCMemberService {
	return &tpcMemberServiceImpl{members: members, logger: logger}
}

func (s *tpcMemberServiceImpl) ListMembers(ctx context.Context, filter repositories.TPCMemberFilter, page, limit int) ([]models.TPCMember, dto.PaginationInfo, error) {
	items, total, err := s.members.List(ctx, filter, page, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing TPC members: %w", err)
	}
	return items, helpers.NewPaginationInfo(total, page, limit), nil
}

func (s *tpcMemberServiceImpl) GetMemberByID(ctx context.Context, id string) (*models.TPCMember, error) {
	return s.members.GetByID(ctx, id)
}

func (s *tpcMemberServiceImpl) CreateMember(ctx context.Context, req *dto.CreateTPCMemberRequest) (*models.TPCMember, error) {
	m := req.ToModel()
	if err := s.members.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("error creating TPC member: %w", err)
	}
	return m, nil
}

func (s *tpcMemberServiceImpl) UpdateMember(ctx context.Context, id string, req *dto.UpdateTPCMemberRequest) (*models.TPCMember, error) {
	m, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(m)
	if err := s.members.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("error updating TPC member: %w", err)
	}
	return m, nil
}

func (s *tpcMemberServiceImpl) DeleteMember(ctx context.Context, id string) error {
	return s.members.SoftDelete(ctx, id)
}

func (s *tpcMemberServiceImpl) RestoreMember(ctx context.Context, id string) error {
	return s.members.Restore(ctx, id)
}

func (s *tpcMemberServiceImpl) DeleteMemberPermanently(ctx context.Context, id string) error {
	return s.members.HardDelete(ctx, id)
}

package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
)

type liabilityService struct {
	BaseService
	liabilityRepo portsrepo.LiabilityRepositoryFacade
}

func NewLiabilityService(repo portsrepo.LiabilityRepositoryFacade) portssvc.LiabilitySvcFacade {
	return &liabilityService{liabilityRepo: repo}
}

var _ portssvc.LiabilitySvcFacade = (*liabilityService)(nil)

func (s *liabilityService) ListLiabilities(ctx context.Context, userID string, filter domain.LiabilityFilter) ([]domain.Liability, error) {
	liabilities, err := s.liabilityRepo.ListLiabilities(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list liabilities", slog.String("user_id", userID))
		return nil, err
	}
	return liabilities, nil
}

func (s *liabilityService) CreateLiability(ctx context.Context, userID string, in domain.LiabilityDetails) (*domain.Liability, error) {
	liability, err := s.liabilityRepo.CreateLiability(ctx, userID, in)
	if err != nil {
		s.LogError(ctx, err, "Failed to create liability", slog.String("user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "Liability created", slog.String("liability_id", liability.ID))
	return liability, nil
}

func (s *liabilityService) UpdateLiability(ctx context.Context, userID, id string, in domain.LiabilityDetails) (*domain.Liability, error) {
	if !isRecordID(id) {
		return nil, apperrors.ErrNotFound
	}
	liability, err := s.liabilityRepo.UpdateLiability(ctx, userID, id, in)
	if err != nil {
		s.LogRepoError(ctx, err, "Failed to update liability", slog.String("liability_id", id))
		return nil, err
	}
	return liability, nil
}

func (s *liabilityService) DeleteLiability(ctx context.Context, userID, id string) error {
	if !isRecordID(id) {
		return nil
	}
	if err := s.liabilityRepo.DeleteLiability(ctx, userID, id); err != nil {
		s.LogError(ctx, err, "Failed to delete liability", slog.String("liability_id", id))
		return err
	}
	return nil
}

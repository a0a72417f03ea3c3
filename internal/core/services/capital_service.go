package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
)

type capitalService struct {
	BaseService
	capitalRepo portsrepo.CapitalRepositoryFacade
}

func NewCapitalService(repo portsrepo.CapitalRepositoryFacade) portssvc.CapitalSvcFacade {
	return &capitalService{capitalRepo: repo}
}

var _ portssvc.CapitalSvcFacade = (*capitalService)(nil)

func (s *capitalService) ListCapitalInjections(ctx context.Context, userID string, filter domain.CapitalFilter) ([]domain.CapitalInjection, error) {
	injections, err := s.capitalRepo.ListCapitalInjections(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list capital injections", slog.String("user_id", userID))
		return nil, err
	}
	return injections, nil
}

func (s *capitalService) CreateCapitalInjection(ctx context.Context, userID string, in domain.CapitalDetails) (*domain.CapitalInjection, error) {
	injection, err := s.capitalRepo.CreateCapitalInjection(ctx, userID, in)
	if err != nil {
		s.LogError(ctx, err, "Failed to create capital injection", slog.String("user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "Capital injection recorded", slog.String("capital_injection_id", injection.ID))
	return injection, nil
}

func (s *capitalService) UpdateCapitalInjection(ctx context.Context, userID, id string, in domain.CapitalDetails) (*domain.CapitalInjection, error) {
	if !isRecordID(id) {
		return nil, apperrors.ErrNotFound
	}
	injection, err := s.capitalRepo.UpdateCapitalInjection(ctx, userID, id, in)
	if err != nil {
		s.LogRepoError(ctx, err, "Failed to update capital injection", slog.String("capital_injection_id", id))
		return nil, err
	}
	return injection, nil
}

func (s *capitalService) DeleteCapitalInjection(ctx context.Context, userID, id string) error {
	if !isRecordID(id) {
		return nil
	}
	if err := s.capitalRepo.DeleteCapitalInjection(ctx, userID, id); err != nil {
		s.LogError(ctx, err, "Failed to delete capital injection", slog.String("capital_injection_id", id))
		return err
	}
	return nil
}

package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
)

type pdcService struct {
	BaseService
	pdcRepo portsrepo.PDCRepositoryFacade
}

func NewPDCService(repo portsrepo.PDCRepositoryFacade) portssvc.PDCSvcFacade {
	return &pdcService{pdcRepo: repo}
}

var _ portssvc.PDCSvcFacade = (*pdcService)(nil)

func (s *pdcService) ListPDCs(ctx context.Context, userID string, filter domain.PDCFilter) ([]domain.PDC, error) {
	cheques, err := s.pdcRepo.ListPDCs(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cheques", slog.String("user_id", userID))
		return nil, err
	}
	return cheques, nil
}

func (s *pdcService) CreatePDC(ctx context.Context, userID string, in domain.PDCInput) (*domain.PDC, error) {
	cheque, err := s.pdcRepo.CreatePDC(ctx, userID, in)
	if err != nil {
		s.LogError(ctx, err, "Failed to create cheque", slog.String("user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "Post-dated cheque recorded", slog.String("pdc_id", cheque.ID))
	return cheque, nil
}

func (s *pdcService) UpdatePDC(ctx context.Context, userID, id string, in domain.PDCInput) (*domain.PDC, error) {
	if !isRecordID(id) {
		return nil, apperrors.ErrNotFound
	}
	cheque, err := s.pdcRepo.UpdatePDC(ctx, userID, id, in)
	if err != nil {
		s.LogRepoError(ctx, err, "Failed to update cheque", slog.String("pdc_id", id))
		return nil, err
	}
	return cheque, nil
}

func (s *pdcService) DeletePDC(ctx context.Context, userID, id string) error {
	if !isRecordID(id) {
		return nil
	}
	if err := s.pdcRepo.DeletePDC(ctx, userID, id); err != nil {
		s.LogError(ctx, err, "Failed to delete cheque", slog.String("pdc_id", id))
		return err
	}
	return nil
}

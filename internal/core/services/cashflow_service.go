package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
)

type cashflowService struct {
	BaseService
	cashflowRepo portsrepo.CashflowRepositoryFacade
}

func NewCashflowService(repo portsrepo.CashflowRepositoryFacade) portssvc.CashflowSvcFacade {
	return &cashflowService{cashflowRepo: repo}
}

var _ portssvc.CashflowSvcFacade = (*cashflowService)(nil)

func (s *cashflowService) ListCashflows(ctx context.Context, userID string, filter domain.CashflowFilter) ([]domain.Cashflow, error) {
	entries, err := s.cashflowRepo.ListCashflows(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cashflow entries", slog.String("user_id", userID))
		return nil, err
	}
	return entries, nil
}

func (s *cashflowService) CreateCashflow(ctx context.Context, userID string, in domain.CashflowDetails) (*domain.Cashflow, error) {
	cashflow, err := s.cashflowRepo.CreateCashflow(ctx, userID, in)
	if err != nil {
		s.LogError(ctx, err, "Failed to create cashflow entry", slog.String("user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "Cashflow entry created", slog.String("cashflow_id", cashflow.ID))
	return cashflow, nil
}

func (s *cashflowService) UpdateCashflow(ctx context.Context, userID, id string, in domain.CashflowDetails) (*domain.Cashflow, error) {
	if !isRecordID(id) {
		return nil, apperrors.ErrNotFound
	}
	cashflow, err := s.cashflowRepo.UpdateCashflow(ctx, userID, id, in)
	if err != nil {
		s.LogRepoError(ctx, err, "Failed to update cashflow entry", slog.String("cashflow_id", id))
		return nil, err
	}
	return cashflow, nil
}

func (s *cashflowService) DeleteCashflow(ctx context.Context, userID, id string) error {
	if !isRecordID(id) {
		return nil
	}
	if err := s.cashflowRepo.DeleteCashflow(ctx, userID, id); err != nil {
		s.LogError(ctx, err, "Failed to delete cashflow entry", slog.String("cashflow_id", id))
		return err
	}
	return nil
}

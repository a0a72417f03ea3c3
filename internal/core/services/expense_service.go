package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
)

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: repo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) ListExpenses(ctx context.Context, userID string, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("user_id", userID))
		return nil, err
	}
	return expenses, nil
}

func (s *expenseService) CreateExpense(ctx context.Context, userID string, in domain.ExpenseDetails) (*domain.Expense, error) {
	expense, err := s.expenseRepo.CreateExpense(ctx, userID, in)
	if err != nil {
		s.LogError(ctx, err, "Failed to create expense", slog.String("user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "Expense created", slog.String("expense_id", expense.ID))
	return expense, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, userID, id string, in domain.ExpenseDetails) (*domain.Expense, error) {
	if !isRecordID(id) {
		return nil, apperrors.ErrNotFound
	}
	expense, err := s.expenseRepo.UpdateExpense(ctx, userID, id, in)
	if err != nil {
		s.LogRepoError(ctx, err, "Failed to update expense", slog.String("expense_id", id))
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, userID, id string) error {
	if !isRecordID(id) {
		return nil
	}
	if err := s.expenseRepo.DeleteExpense(ctx, userID, id); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", id))
		return err
	}
	return nil
}

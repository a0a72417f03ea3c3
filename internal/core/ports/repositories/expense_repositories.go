package repositories

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// ListExpenses returns the owner's records matching filter in the default order.
	ListExpenses(ctx context.Context, userID string, filter domain.ExpenseFilter) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	CreateExpense(ctx context.Context, userID string, in domain.ExpenseDetails) (*domain.Expense, error)
	// UpdateExpense returns apperrors.ErrNotFound when no row matches both id and owner.
	UpdateExpense(ctx context.Context, userID, id string, in domain.ExpenseDetails) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, userID, id string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}

package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	ListExpenses(ctx context.Context, userID string, filter domain.ExpenseFilter) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	CreateExpense(ctx context.Context, userID string, in domain.ExpenseDetails) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, userID, id string, in domain.ExpenseDetails) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, userID, id string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}

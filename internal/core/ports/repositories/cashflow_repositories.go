package repositories

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// CashflowReader defines read operations for cashflow data
type CashflowReader interface {
	// ListCashflows returns the owner's records matching filter in the default order.
	ListCashflows(ctx context.Context, userID string, filter domain.CashflowFilter) ([]domain.Cashflow, error)
}

// CashflowWriter defines write operations for cashflow data
type CashflowWriter interface {
	CreateCashflow(ctx context.Context, userID string, in domain.CashflowDetails) (*domain.Cashflow, error)
	// UpdateCashflow returns apperrors.ErrNotFound when no row matches both id and owner.
	UpdateCashflow(ctx context.Context, userID, id string, in domain.CashflowDetails) (*domain.Cashflow, error)
	DeleteCashflow(ctx context.Context, userID, id string) error
}

// CashflowRepositoryFacade combines all cashflow-related repository interfaces
type CashflowRepositoryFacade interface {
	CashflowReader
	CashflowWriter
}

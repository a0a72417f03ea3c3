package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// CashflowReaderSvc defines read operations for cashflow data
type CashflowReaderSvc interface {
	ListCashflows(ctx context.Context, userID string, filter domain.CashflowFilter) ([]domain.Cashflow, error)
}

// CashflowWriterSvc defines write operations for cashflow data
type CashflowWriterSvc interface {
	CreateCashflow(ctx context.Context, userID string, in domain.CashflowDetails) (*domain.Cashflow, error)
	UpdateCashflow(ctx context.Context, userID, id string, in domain.CashflowDetails) (*domain.Cashflow, error)
	DeleteCashflow(ctx context.Context, userID, id string) error
}

// CashflowSvcFacade combines all cashflow-related service interfaces
type CashflowSvcFacade interface {
	CashflowReaderSvc
	CashflowWriterSvc
}

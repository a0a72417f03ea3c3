package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// CapitalReaderSvc defines read operations for capital data
type CapitalReaderSvc interface {
	ListCapitalInjections(ctx context.Context, userID string, filter domain.CapitalFilter) ([]domain.CapitalInjection, error)
}

// CapitalWriterSvc defines write operations for capital data
type CapitalWriterSvc interface {
	CreateCapitalInjection(ctx context.Context, userID string, in domain.CapitalDetails) (*domain.CapitalInjection, error)
	UpdateCapitalInjection(ctx context.Context, userID, id string, in domain.CapitalDetails) (*domain.CapitalInjection, error)
	DeleteCapitalInjection(ctx context.Context, userID, id string) error
}

// CapitalSvcFacade combines all capital-related service interfaces
type CapitalSvcFacade interface {
	CapitalReaderSvc
	CapitalWriterSvc
}

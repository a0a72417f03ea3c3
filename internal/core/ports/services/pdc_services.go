package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// PDCReaderSvc defines read operations for pdc data
type PDCReaderSvc interface {
	ListPDCs(ctx context.Context, userID string, filter domain.PDCFilter) ([]domain.PDC, error)
}

// PDCWriterSvc defines write operations for pdc data
type PDCWriterSvc interface {
	CreatePDC(ctx context.Context, userID string, in domain.PDCInput) (*domain.PDC, error)
	UpdatePDC(ctx context.Context, userID, id string, in domain.PDCInput) (*domain.PDC, error)
	DeletePDC(ctx context.Context, userID, id string) error
}

// PDCSvcFacade combines all pdc-related service interfaces
type PDCSvcFacade interface {
	PDCReaderSvc
	PDCWriterSvc
}

package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// LiabilityReaderSvc defines read operations for liability data
type LiabilityReaderSvc interface {
	ListLiabilities(ctx context.Context, userID string, filter domain.LiabilityFilter) ([]domain.Liability, error)
}

// LiabilityWriterSvc defines write operations for liability data
type LiabilityWriterSvc interface {
	CreateLiability(ctx context.Context, userID string, in domain.LiabilityDetails) (*domain.Liability, error)
	UpdateLiability(ctx context.Context, userID, id string, in domain.LiabilityDetails) (*domain.Liability, error)
	DeleteLiability(ctx context.Context, userID, id string) error
}

// LiabilitySvcFacade combines all liability-related service interfaces
type LiabilitySvcFacade interface {
	LiabilityReaderSvc
	LiabilityWriterSvc
}

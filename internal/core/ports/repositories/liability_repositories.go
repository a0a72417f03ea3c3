package repositories

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// LiabilityReader defines read operations for liability data
type LiabilityReader interface {
	// ListLiabilities returns the owner's records matching filter in the default order.
	ListLiabilities(ctx context.Context, userID string, filter domain.LiabilityFilter) ([]domain.Liability, error)
}

// LiabilityWriter defines write operations for liability data
type LiabilityWriter interface {
	CreateLiability(ctx context.Context, userID string, in domain.LiabilityDetails) (*domain.Liability, error)
	// UpdateLiability returns apperrors.ErrNotFound when no row matches both id and owner.
	UpdateLiability(ctx context.Context, userID, id string, in domain.LiabilityDetails) (*domain.Liability, error)
	DeleteLiability(ctx context.Context, userID, id string) error
}

// LiabilityRepositoryFacade combines all liability-related repository interfaces
type LiabilityRepositoryFacade interface {
	LiabilityReader
	LiabilityWriter
}

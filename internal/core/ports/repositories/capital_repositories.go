package repositories

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// CapitalReader defines read operations for capital data
type CapitalReader interface {
	// ListCapitalInjections returns the owner's records matching filter in the default order.
	ListCapitalInjections(ctx context.Context, userID string, filter domain.CapitalFilter) ([]domain.CapitalInjection, error)
}

// CapitalWriter defines write operations for capital data
type CapitalWriter interface {
	CreateCapitalInjection(ctx context.Context, userID string, in domain.CapitalDetails) (*domain.CapitalInjection, error)
	// UpdateCapitalInjection returns apperrors.ErrNotFound when no row matches both id and owner.
	UpdateCapitalInjection(ctx context.Context, userID, id string, in domain.CapitalDetails) (*domain.CapitalInjection, error)
	DeleteCapitalInjection(ctx context.Context, userID, id string) error
}

// CapitalRepositoryFacade combines all capital-related repository interfaces
type CapitalRepositoryFacade interface {
	CapitalReader
	CapitalWriter
}

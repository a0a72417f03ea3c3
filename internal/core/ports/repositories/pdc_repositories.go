package repositories

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// PDCReader defines read operations for pdc data
type PDCReader interface {
	// ListPDCs returns the owner's records matching filter in the default order.
	ListPDCs(ctx context.Context, userID string, filter domain.PDCFilter) ([]domain.PDC, error)
}

// PDCWriter defines write operations for pdc data
type PDCWriter interface {
	CreatePDC(ctx context.Context, userID string, in domain.PDCInput) (*domain.PDC, error)
	// UpdatePDC returns apperrors.ErrNotFound when no row matches both id and owner.
	UpdatePDC(ctx context.Context, userID, id string, in domain.PDCInput) (*domain.PDC, error)
	DeletePDC(ctx context.Context, userID, id string) error
}

// PDCRepositoryFacade combines all pdc-related repository interfaces
type PDCRepositoryFacade interface {
	PDCReader
	PDCWriter
}

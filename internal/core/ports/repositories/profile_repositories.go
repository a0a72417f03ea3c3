package repositories

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

type ProfileRepositoryFacade interface {
	FindProfileByID(ctx context.Context, userID string) (*domain.Profile, error)
	UpsertProfile(ctx context.Context, userID string, email *string, in domain.ProfileDetails) (*domain.Profile, error)
}

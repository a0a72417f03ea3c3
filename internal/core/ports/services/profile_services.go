package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// ProfileSvcFacade reads and saves the caller's business profile.
type ProfileSvcFacade interface {
	// GetProfile returns apperrors.ErrNotFound until the profile is first saved.
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, email *string, in domain.ProfileDetails) (*domain.Profile, error)
}

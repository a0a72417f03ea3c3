package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
)

type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepositoryFacade
}

func NewProfileService(repo portsrepo.ProfileRepositoryFacade) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: repo}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profileRepo.FindProfileByID(ctx, userID)
}

// UpdateProfile creates the profile on first save.
func (s *profileService) UpdateProfile(ctx context.Context, userID string, email *string, in domain.ProfileDetails) (*domain.Profile, error) {
	profile, err := s.profileRepo.UpsertProfile(ctx, userID, email, in)
	if err != nil {
		s.LogError(ctx, err, "Failed to save profile", slog.String("user_id", userID))
		return nil, err
	}
	return profile, nil
}

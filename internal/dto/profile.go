package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/core/validation"
)

// ProfileDetailsFromPayload maps blank names to nil so they are cleared.
func ProfileDetailsFromPayload(p validation.Payload) domain.ProfileDetails {
	return domain.ProfileDetails{
		FullName:    p.OptionalString("full_name"),
		CompanyName: p.OptionalString("company_name"),
	}
}

type ProfileResponse struct {
	ID          string    `json:"id"`
	Email       *string   `json:"email"`
	FullName    *string   `json:"full_name"`
	CompanyName *string   `json:"company_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToProfileResponse(p domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID,
		Email:       p.Email,
		FullName:    p.FullName,
		CompanyName: p.CompanyName,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

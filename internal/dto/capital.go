package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/core/validation"
	"github.com/shopspring/decimal"
)

type ListCapitalParams struct {
	Type   string `form:"type"`
	Source string `form:"source"`
	Date   string `form:"date" binding:"omitempty,datetime=2006-01"`
	Search string `form:"search"`
}

func (p ListCapitalParams) ToFilter() domain.CapitalFilter {
	return domain.CapitalFilter{Type: p.Type, Source: p.Source, Month: p.Date, Search: p.Search}
}

func CapitalDetailsFromPayload(p validation.Payload) domain.CapitalDetails {
	return domain.CapitalDetails{
		Type:        domain.CapitalType(p.Text("type")),
		Amount:      p.Decimal("amount"),
		Date:        p.Date("date"),
		Source:      p.OptionalString("source"),
		Description: p.OptionalString("description"),
		Notes:       p.OptionalString("notes"),
	}
}

type CapitalResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Source      *string         `json:"source"`
	Description *string         `json:"description"`
	Notes       *string         `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func ToCapitalResponse(c domain.CapitalInjection) CapitalResponse {
	return CapitalResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		Type:        string(c.Type),
		Amount:      c.Amount,
		Date:        formatDate(c.Date),
		Source:      c.Source,
		Description: c.Description,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func ToCapitalResponses(injections []domain.CapitalInjection) []CapitalResponse {
	return mapSlice(injections, ToCapitalResponse)
}

package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/core/validation"
	"github.com/shopspring/decimal"
)

type ListLiabilitiesParams struct {
	Type   string `form:"type"`
	Search string `form:"search"`
}

func (p ListLiabilitiesParams) ToFilter() domain.LiabilityFilter {
	return domain.LiabilityFilter{Type: p.Type, Search: p.Search}
}

func LiabilityDetailsFromPayload(p validation.Payload) domain.LiabilityDetails {
	return domain.LiabilityDetails{
		Type:              domain.LiabilityType(p.Text("type")),
		Name:              p.Text("name"),
		Amount:            p.Decimal("amount"),
		OutstandingAmount: p.Decimal("outstanding_amount"),
		DueDate:           p.OptionalDate("due_date"),
		InterestRate:      p.OptionalDecimal("interest_rate"),
		Notes:             p.OptionalString("notes"),
	}
}

type LiabilityResponse struct {
	ID                string           `json:"id"`
	UserID            string           `json:"user_id"`
	Type              string           `json:"type"`
	Name              string           `json:"name"`
	Amount            decimal.Decimal  `json:"amount"`
	OutstandingAmount decimal.Decimal  `json:"outstanding_amount"`
	DueDate           *string          `json:"due_date"`
	InterestRate      *decimal.Decimal `json:"interest_rate"`
	Notes             *string          `json:"notes"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func ToLiabilityResponse(l domain.Liability) LiabilityResponse {
	resp := LiabilityResponse{
		ID:                l.ID,
		UserID:            l.UserID,
		Type:              string(l.Type),
		Name:              l.Name,
		Amount:            l.Amount,
		OutstandingAmount: l.OutstandingAmount,
		DueDate:           formatOptionalDate(l.DueDate),
		Notes:             l.Notes,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
	if l.InterestRate.Valid {
		rate := l.InterestRate.Decimal
		resp.InterestRate = &rate
	}
	return resp
}

func ToLiabilityResponses(liabilities []domain.Liability) []LiabilityResponse {
	return mapSlice(liabilities, ToLiabilityResponse)
}

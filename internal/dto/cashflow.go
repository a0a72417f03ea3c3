package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/core/validation"
	"github.com/shopspring/decimal"
)

type ListCashflowParams struct {
	Type     string `form:"type"`
	Category string `form:"category"`
	Date     string `form:"date" binding:"omitempty,datetime=2006-01"`
	Search   string `form:"search"`
}

func (p ListCashflowParams) ToFilter() domain.CashflowFilter {
	return domain.CashflowFilter{Type: p.Type, Category: p.Category, Month: p.Date, Search: p.Search}
}

func CashflowDetailsFromPayload(p validation.Payload) domain.CashflowDetails {
	return domain.CashflowDetails{
		Type:          domain.CashflowType(p.Text("type")),
		Category:      p.Text("category"),
		Amount:        p.Decimal("amount"),
		Date:          p.Date("date"),
		Description:   p.OptionalString("description"),
		ReferenceID:   p.OptionalString("reference_id"),
		ReferenceType: p.OptionalString("reference_type"),
	}
}

type CashflowResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Description   *string         `json:"description"`
	ReferenceID   *string         `json:"reference_id"`
	ReferenceType *string         `json:"reference_type"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func ToCashflowResponse(c domain.Cashflow) CashflowResponse {
	return CashflowResponse{
		ID:            c.ID,
		UserID:        c.UserID,
		Type:          string(c.Type),
		Category:      c.Category,
		Amount:        c.Amount,
		Date:          formatDate(c.Date),
		Description:   c.Description,
		ReferenceID:   c.ReferenceID,
		ReferenceType: c.ReferenceType,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func ToCashflowResponses(entries []domain.Cashflow) []CashflowResponse {
	return mapSlice(entries, ToCashflowResponse)
}

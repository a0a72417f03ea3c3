package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/core/validation"
	"github.com/shopspring/decimal"
)

// ListExpensesParams are the query filters of GET /api/expenses.
type ListExpensesParams struct {
	Category string `form:"category"`
	Date     string `form:"date" binding:"omitempty,datetime=2006-01"`
	Search   string `form:"search"`
}

func (p ListExpensesParams) ToFilter() domain.ExpenseFilter {
	return domain.ExpenseFilter{Category: p.Category, Month: p.Date, Search: p.Search}
}

// ExpenseDetailsFromPayload decodes a validated payload.
func ExpenseDetailsFromPayload(p validation.Payload) domain.ExpenseDetails {
	return domain.ExpenseDetails{
		Category: domain.ExpenseCategory(p.Text("category")),
		Amount:   p.Decimal("amount"),
		Date:     p.Date("date"),
		Notes:    p.OptionalString("notes"),
	}
}

type ExpenseResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Notes     *string         `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func ToExpenseResponse(e domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		Category:  string(e.Category),
		Amount:    e.Amount,
		Date:      formatDate(e.Date),
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	return mapSlice(expenses, ToExpenseResponse)
}

package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/core/validation"
	"github.com/shopspring/decimal"
)

type ListPDCParams struct {
	Status   string `form:"status"`
	BankName string `form:"bank_name"`
	Search   string `form:"search"`
}

func (p ListPDCParams) ToFilter() domain.PDCFilter {
	return domain.PDCFilter{Status: p.Status, BankName: p.BankName, Search: p.Search}
}

func PDCInputFromPayload(p validation.Payload) domain.PDCInput {
	in := domain.PDCInput{
		PDCDetails: domain.PDCDetails{
			ChequeNumber: p.Text("cheque_number"),
			BankName:     p.Text("bank_name"),
			Amount:       p.Decimal("amount"),
			IssueDate:    p.Date("issue_date"),
			DueDate:      p.Date("due_date"),
			Payee:        p.OptionalString("payee"),
			Purpose:      p.OptionalString("purpose"),
			Notes:        p.OptionalString("notes"),
		},
	}
	if p.Present("status") {
		status := domain.PDCStatus(p.Text("status"))
		in.Status = &status
	}
	return in
}

type PDCResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	ChequeNumber string          `json:"cheque_number"`
	BankName     string          `json:"bank_name"`
	Amount       decimal.Decimal `json:"amount"`
	IssueDate    string          `json:"issue_date"`
	DueDate      string          `json:"due_date"`
	Status       string          `json:"status"`
	Payee        *string         `json:"payee"`
	Purpose      *string         `json:"purpose"`
	Notes        *string         `json:"notes"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func ToPDCResponse(p domain.PDC) PDCResponse {
	return PDCResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		ChequeNumber: p.ChequeNumber,
		BankName:     p.BankName,
		Amount:       p.Amount,
		IssueDate:    formatDate(p.IssueDate),
		DueDate:      formatDate(p.DueDate),
		Status:       string(p.Status),
		Payee:        p.Payee,
		Purpose:      p.Purpose,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func ToPDCResponses(cheques []domain.PDC) []PDCResponse {
	return mapSlice(cheques, ToPDCResponse)
}

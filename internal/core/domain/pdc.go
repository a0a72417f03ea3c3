package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PDCStatus tracks a post-dated cheque through its lifecycle.
type PDCStatus string

const (
	PDCPending   PDCStatus = "pending"
	PDCCleared   PDCStatus = "cleared"
	PDCBounced   PDCStatus = "bounced"
	PDCCancelled PDCStatus = "cancelled"
)

var PDCStatuses = []PDCStatus{PDCPending, PDCCleared, PDCBounced, PDCCancelled}

const DefaultPDCStatus = PDCPending

// PDCDetails are the user-editable fields of a post-dated cheque.
type PDCDetails struct {
	ChequeNumber string
	BankName     string
	Amount       decimal.Decimal
	IssueDate    time.Time
	DueDate      time.Time
	Payee        *string
	Purpose      *string
	Notes        *string
}

// PDCInput is what create and update accept. A nil Status means
// DefaultPDCStatus on both.
type PDCInput struct {
	PDCDetails
	Status *PDCStatus
}

func (in PDCInput) StatusOrDefault() PDCStatus {
	if in.Status == nil {
		return DefaultPDCStatus
	}
	return *in.Status
}

type PDC struct {
	ID     string
	UserID string
	PDCDetails
	Status PDCStatus
	Timestamps
}

type PDCFilter struct {
	Status   string
	BankName string
	Search   string
}

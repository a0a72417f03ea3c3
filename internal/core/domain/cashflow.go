package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CashflowType string

const (
	CashflowInflow  CashflowType = "inflow"
	CashflowOutflow CashflowType = "outflow"
)

var CashflowTypes = []CashflowType{CashflowInflow, CashflowOutflow}

// CashflowDetails are the user-editable fields of a cashflow entry.
// Category is free text. ReferenceID and ReferenceType optionally point at
// the record that caused the movement.
type CashflowDetails struct {
	Type          CashflowType
	Category      string
	Amount        decimal.Decimal
	Date          time.Time
	Description   *string
	ReferenceID   *string
	ReferenceType *string
}

type Cashflow struct {
	ID     string
	UserID string
	CashflowDetails
	Timestamps
}

type CashflowFilter struct {
	Type     string
	Category string
	Month    string
	Search   string
}

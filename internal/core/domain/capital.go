package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CapitalType string

const (
	CapitalEquity     CapitalType = "equity"
	CapitalLoan       CapitalType = "loan"
	CapitalInvestment CapitalType = "investment"
	CapitalGrant      CapitalType = "grant"
	CapitalOther      CapitalType = "other"
)

var CapitalTypes = []CapitalType{CapitalEquity, CapitalLoan, CapitalInvestment, CapitalGrant, CapitalOther}

// CapitalDetails are the user-editable fields of a capital injection.
type CapitalDetails struct {
	Type        CapitalType
	Amount      decimal.Decimal
	Date        time.Time
	Source      *string
	Description *string
	Notes       *string
}

// CapitalInjection records money put into the business.
type CapitalInjection struct {
	ID     string
	UserID string
	CapitalDetails
	Timestamps
}

type CapitalFilter struct {
	Type   string
	Source string
	Month  string
	Search string
}

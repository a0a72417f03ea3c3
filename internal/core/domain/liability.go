package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LiabilityType string

const (
	LiabilityLoan          LiabilityType = "loan"
	LiabilityCreditCard    LiabilityType = "credit_card"
	LiabilityVendorPayment LiabilityType = "vendor_payment"
	LiabilityTaxPayment    LiabilityType = "tax_payment"
	LiabilityOther         LiabilityType = "other"
)

var LiabilityTypes = []LiabilityType{
	LiabilityLoan, LiabilityCreditCard, LiabilityVendorPayment, LiabilityTaxPayment, LiabilityOther,
}

// LiabilityDetails are the user-editable fields of a liability.
// OutstandingAmount is not required to be at most Amount.
type LiabilityDetails struct {
	Type              LiabilityType
	Name              string
	Amount            decimal.Decimal
	OutstandingAmount decimal.Decimal
	DueDate           *time.Time
	InterestRate      decimal.NullDecimal
	Notes             *string
}

type Liability struct {
	ID     string
	UserID string
	LiabilityDetails
	Timestamps
}

type LiabilityFilter struct {
	Type   string
	Search string
}

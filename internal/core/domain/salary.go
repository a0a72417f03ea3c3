package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SalaryStatus string

const (
	SalaryPaid    SalaryStatus = "paid"
	SalaryUnpaid  SalaryStatus = "unpaid"
	SalaryPending SalaryStatus = "pending"
)

var SalaryStatuses = []SalaryStatus{SalaryPaid, SalaryUnpaid, SalaryPending}

// DefaultSalaryStatus applies when a salary is written without a status.
const DefaultSalaryStatus = SalaryUnpaid

// SalaryDetails are the user-editable fields of a salary record.
// (EmployeeID, Month, Year) is unique per owner.
type SalaryDetails struct {
	EmployeeID string
	Month      int
	Year       int
	Amount     decimal.Decimal
	PaidDate   *time.Time
	Notes      *string
}

// SalaryInput is what create and update accept. Both write the full record,
// so a nil Status means DefaultSalaryStatus either way.
type SalaryInput struct {
	SalaryDetails
	Status *SalaryStatus
}

func (in SalaryInput) StatusOrDefault() SalaryStatus {
	if in.Status == nil {
		return DefaultSalaryStatus
	}
	return *in.Status
}

// Salary is one monthly payment record for an employee.
type Salary struct {
	ID     string
	UserID string
	SalaryDetails
	Status   SalaryStatus
	Employee *EmployeeSummary
	Timestamps
}

type SalaryFilter struct {
	EmployeeID string
	Month      *int
	Year       *int
	Status     string
}

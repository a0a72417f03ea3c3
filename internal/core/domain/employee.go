package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeDetails are the user-editable fields of an employee.
type EmployeeDetails struct {
	Name          string
	Position      *string
	MonthlySalary decimal.Decimal
	HireDate      *time.Time
}

// EmployeeInput is what create and update accept. A nil IsActive means
// active on both.
type EmployeeInput struct {
	EmployeeDetails
	IsActive *bool
}

// Active resolves IsActive, defaulting to true.
func (in EmployeeInput) Active() bool {
	return in.IsActive == nil || *in.IsActive
}

// Employee is a person on the payroll. Deleting an employee only clears IsActive.
type Employee struct {
	ID     string
	UserID string
	EmployeeDetails
	IsActive bool
	Timestamps
}

// EmployeeSummary is the slice of an employee embedded in salary records.
type EmployeeSummary struct {
	Name     string
	Position *string
}

type EmployeeFilter struct {
	Active *bool
	Search string
}

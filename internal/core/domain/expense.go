package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory is the fixed set of expense buckets.
type ExpenseCategory string

const (
	ExpenseOfficeSupplies ExpenseCategory = "office_supplies"
	ExpenseUtilities      ExpenseCategory = "utilities"
	ExpenseRent           ExpenseCategory = "rent"
	ExpenseMarketing      ExpenseCategory = "marketing"
	ExpenseTravel         ExpenseCategory = "travel"
	ExpenseMeals          ExpenseCategory = "meals"
	ExpenseEquipment      ExpenseCategory = "equipment"
	ExpenseSoftware       ExpenseCategory = "software"
	ExpenseInsurance      ExpenseCategory = "insurance"
	ExpenseOther          ExpenseCategory = "other"
)

// ExpenseCategories lists every valid ExpenseCategory in display order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseOfficeSupplies, ExpenseUtilities, ExpenseRent, ExpenseMarketing, ExpenseTravel,
	ExpenseMeals, ExpenseEquipment, ExpenseSoftware, ExpenseInsurance, ExpenseOther,
}

// ExpenseDetails are the user-editable fields of an expense.
type ExpenseDetails struct {
	Category ExpenseCategory
	Amount   decimal.Decimal
	Date     time.Time
	Notes    *string
}

// Expense is a single business expense owned by one user.
type Expense struct {
	ID     string
	UserID string
	ExpenseDetails
	Timestamps
}

// ExpenseFilter narrows an expense listing. Empty fields do not filter.
type ExpenseFilter struct {
	Category string
	Month    string
	Search   string
}

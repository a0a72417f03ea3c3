package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Row models mirror the table columns one to one so they can be collected
// with pgx.RowToStructByName.

type Expense struct {
	ID        string          `db:"id"`
	UserID    string          `db:"user_id"`
	Category  string          `db:"category"`
	Amount    decimal.Decimal `db:"amount"`
	Date      time.Time       `db:"date"`
	Notes     *string         `db:"notes"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type Liability struct {
	ID                string              `db:"id"`
	UserID            string              `db:"user_id"`
	Type              string              `db:"type"`
	Name              string              `db:"name"`
	Amount            decimal.Decimal     `db:"amount"`
	OutstandingAmount decimal.Decimal     `db:"outstanding_amount"`
	DueDate           *time.Time          `db:"due_date"`
	InterestRate      decimal.NullDecimal `db:"interest_rate"`
	Notes             *string             `db:"notes"`
	CreatedAt         time.Time           `db:"created_at"`
	UpdatedAt         time.Time           `db:"updated_at"`
}

type Employee struct {
	ID            string          `db:"id"`
	UserID        string          `db:"user_id"`
	Name          string          `db:"name"`
	Position      *string         `db:"position"`
	MonthlySalary decimal.Decimal `db:"monthly_salary"`
	HireDate      *time.Time      `db:"hire_date"`
	IsActive      bool            `db:"is_active"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// Salary includes the joined employee columns; they are NULL when the
// employee row is missing.
type Salary struct {
	ID               string          `db:"id"`
	UserID           string          `db:"user_id"`
	EmployeeID       string          `db:"employee_id"`
	Month            int             `db:"month"`
	Year             int             `db:"year"`
	Amount           decimal.Decimal `db:"amount"`
	Status           string          `db:"status"`
	PaidDate         *time.Time      `db:"paid_date"`
	Notes            *string         `db:"notes"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
	EmployeeName     *string         `db:"employee_name"`
	EmployeePosition *string         `db:"employee_position"`
}

type Cashflow struct {
	ID            string          `db:"id"`
	UserID        string          `db:"user_id"`
	Type          string          `db:"type"`
	Category      string          `db:"category"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"date"`
	Description   *string         `db:"description"`
	ReferenceID   *string         `db:"reference_id"`
	ReferenceType *string         `db:"reference_type"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

type PDC struct {
	ID           string          `db:"id"`
	UserID       string          `db:"user_id"`
	ChequeNumber string          `db:"cheque_number"`
	BankName     string          `db:"bank_name"`
	Amount       decimal.Decimal `db:"amount"`
	IssueDate    time.Time       `db:"issue_date"`
	DueDate      time.Time       `db:"due_date"`
	Status       string          `db:"status"`
	Payee        *string         `db:"payee"`
	Purpose      *string         `db:"purpose"`
	Notes        *string         `db:"notes"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

type CapitalInjection struct {
	ID          string          `db:"id"`
	UserID      string          `db:"user_id"`
	Type        string          `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Date        time.Time       `db:"date"`
	Source      *string         `db:"source"`
	Description *string         `db:"description"`
	Notes       *string         `db:"notes"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

type Profile struct {
	ID          string    `db:"id"`
	Email       *string   `db:"email"`
	FullName    *string   `db:"full_name"`
	CompanyName *string   `db:"company_name"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/core/validation"
	"github.com/shopspring/decimal"
)

type ListSalariesParams struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Month      *int   `form:"month" binding:"omitempty,min=1,max=12"`
	Year       *int   `form:"year" binding:"omitempty,min=2000,max=2100"`
	Status     string `form:"status"`
}

func (p ListSalariesParams) ToFilter() domain.SalaryFilter {
	return domain.SalaryFilter{EmployeeID: p.EmployeeID, Month: p.Month, Year: p.Year, Status: p.Status}
}

func SalaryInputFromPayload(p validation.Payload) domain.SalaryInput {
	in := domain.SalaryInput{
		SalaryDetails: domain.SalaryDetails{
			EmployeeID: p.Text("employee_id"),
			Month:      p.Int("month"),
			Year:       p.Int("year"),
			Amount:     p.Decimal("amount"),
			PaidDate:   p.OptionalDate("paid_date"),
			Notes:      p.OptionalString("notes"),
		},
	}
	if p.Present("status") {
		status := domain.SalaryStatus(p.Text("status"))
		in.Status = &status
	}
	return in
}

type SalaryEmployeeResponse struct {
	Name     string  `json:"name"`
	Position *string `json:"position"`
}

type SalaryResponse struct {
	ID         string                  `json:"id"`
	UserID     string                  `json:"user_id"`
	EmployeeID string                  `json:"employee_id"`
	Month      int                     `json:"month"`
	Year       int                     `json:"year"`
	Amount     decimal.Decimal         `json:"amount"`
	Status     string                  `json:"status"`
	PaidDate   *string                 `json:"paid_date"`
	Notes      *string                 `json:"notes"`
	Employee   *SalaryEmployeeResponse `json:"employees"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
}

func ToSalaryResponse(s domain.Salary) SalaryResponse {
	resp := SalaryResponse{
		ID:         s.ID,
		UserID:     s.UserID,
		EmployeeID: s.EmployeeID,
		Month:      s.Month,
		Year:       s.Year,
		Amount:     s.Amount,
		Status:     string(s.Status),
		PaidDate:   formatOptionalDate(s.PaidDate),
		Notes:      s.Notes,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
	if s.Employee != nil {
		resp.Employee = &SalaryEmployeeResponse{Name: s.Employee.Name, Position: s.Employee.Position}
	}
	return resp
}

func ToSalaryResponses(salaries []domain.Salary) []SalaryResponse {
	return mapSlice(salaries, ToSalaryResponse)
}

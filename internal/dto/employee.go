package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/core/validation"
	"github.com/shopspring/decimal"
)

type ListEmployeesParams struct {
	Active string `form:"active" binding:"omitempty,oneof=true false"`
	Search string `form:"search"`
}

func (p ListEmployeesParams) ToFilter() domain.EmployeeFilter {
	f := domain.EmployeeFilter{Search: p.Search}
	if p.Active != "" {
		active := p.Active == "true"
		f.Active = &active
	}
	return f
}

func EmployeeInputFromPayload(p validation.Payload) domain.EmployeeInput {
	return domain.EmployeeInput{
		EmployeeDetails: domain.EmployeeDetails{
			Name:          p.Text("name"),
			Position:      p.OptionalString("position"),
			MonthlySalary: p.Decimal("monthly_salary"),
			HireDate:      p.OptionalDate("hire_date"),
		},
		IsActive: p.OptionalBool("is_active"),
	}
}

type EmployeeResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Name          string          `json:"name"`
	Position      *string         `json:"position"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	HireDate      *string         `json:"hire_date"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func ToEmployeeResponse(e domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		UserID:        e.UserID,
		Name:          e.Name,
		Position:      e.Position,
		MonthlySalary: e.MonthlySalary,
		HireDate:      formatOptionalDate(e.HireDate),
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	return mapSlice(employees, ToEmployeeResponse)
}

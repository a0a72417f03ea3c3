package mapping

import (
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/models"
)

func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ID:     m.ID,
		UserID: m.UserID,
		ExpenseDetails: domain.ExpenseDetails{
			Category: domain.ExpenseCategory(m.Category),
			Amount:   m.Amount,
			Date:     m.Date,
			Notes:    m.Notes,
		},
		Timestamps: domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func ToDomainLiability(m models.Liability) domain.Liability {
	return domain.Liability{
		ID:     m.ID,
		UserID: m.UserID,
		LiabilityDetails: domain.LiabilityDetails{
			Type:              domain.LiabilityType(m.Type),
			Name:              m.Name,
			Amount:            m.Amount,
			OutstandingAmount: m.OutstandingAmount,
			DueDate:           m.DueDate,
			InterestRate:      m.InterestRate,
			Notes:             m.Notes,
		},
		Timestamps: domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		ID:     m.ID,
		UserID: m.UserID,
		EmployeeDetails: domain.EmployeeDetails{
			Name:          m.Name,
			Position:      m.Position,
			MonthlySalary: m.MonthlySalary,
			HireDate:      m.HireDate,
		},
		IsActive:   m.IsActive,
		Timestamps: domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func ToDomainSalary(m models.Salary) domain.Salary {
	s := domain.Salary{
		ID:     m.ID,
		UserID: m.UserID,
		SalaryDetails: domain.SalaryDetails{
			EmployeeID: m.EmployeeID,
			Month:      m.Month,
			Year:       m.Year,
			Amount:     m.Amount,
			PaidDate:   m.PaidDate,
			Notes:      m.Notes,
		},
		Status:     domain.SalaryStatus(m.Status),
		Timestamps: domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
	if m.EmployeeName != nil {
		s.Employee = &domain.EmployeeSummary{Name: *m.EmployeeName, Position: m.EmployeePosition}
	}
	return s
}

func ToDomainCashflow(m models.Cashflow) domain.Cashflow {
	return domain.Cashflow{
		ID:     m.ID,
		UserID: m.UserID,
		CashflowDetails: domain.CashflowDetails{
			Type:          domain.CashflowType(m.Type),
			Category:      m.Category,
			Amount:        m.Amount,
			Date:          m.Date,
			Description:   m.Description,
			ReferenceID:   m.ReferenceID,
			ReferenceType: m.ReferenceType,
		},
		Timestamps: domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func ToDomainPDC(m models.PDC) domain.PDC {
	return domain.PDC{
		ID:     m.ID,
		UserID: m.UserID,
		PDCDetails: domain.PDCDetails{
			ChequeNumber: m.ChequeNumber,
			BankName:     m.BankName,
			Amount:       m.Amount,
			IssueDate:    m.IssueDate,
			DueDate:      m.DueDate,
			Payee:        m.Payee,
			Purpose:      m.Purpose,
			Notes:        m.Notes,
		},
		Status:     domain.PDCStatus(m.Status),
		Timestamps: domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func ToDomainCapitalInjection(m models.CapitalInjection) domain.CapitalInjection {
	return domain.CapitalInjection{
		ID:     m.ID,
		UserID: m.UserID,
		CapitalDetails: domain.CapitalDetails{
			Type:        domain.CapitalType(m.Type),
			Amount:      m.Amount,
			Date:        m.Date,
			Source:      m.Source,
			Description: m.Description,
			Notes:       m.Notes,
		},
		Timestamps: domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func ToDomainProfile(m models.Profile) domain.Profile {
	return domain.Profile{
		ID:          m.ID,
		Email:       m.Email,
		FullName:    m.FullName,
		CompanyName: m.CompanyName,
		Timestamps:  domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

// ToDomainSlice converts a slice of row models, never returning nil.
func ToDomainSlice[M, D any](rows []M, fn func(M) D) []D {
	out := make([]D, len(rows))
	for i, r := range rows {
		out[i] = fn(r)
	}
	return out
}

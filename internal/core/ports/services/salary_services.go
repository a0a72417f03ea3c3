package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// SalaryReaderSvc defines read operations for salary data
type SalaryReaderSvc interface {
	ListSalaries(ctx context.Context, userID string, filter domain.SalaryFilter) ([]domain.Salary, error)
}

// SalaryWriterSvc defines write operations for salary data
type SalaryWriterSvc interface {
	// CreateSalary returns apperrors.ErrDuplicate when the employee already has a
	// salary for that month and year, and a validation error when the employee
	// does not belong to userID.
	CreateSalary(ctx context.Context, userID string, in domain.SalaryInput) (*domain.Salary, error)
	UpdateSalary(ctx context.Context, userID, id string, in domain.SalaryInput) (*domain.Salary, error)
	DeleteSalary(ctx context.Context, userID, id string) error
}

// SalarySvcFacade combines all salary-related service interfaces
type SalarySvcFacade interface {
	SalaryReaderSvc
	SalaryWriterSvc
}

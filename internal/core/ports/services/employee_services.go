package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// EmployeeReaderSvc defines read operations for employee data
type EmployeeReaderSvc interface {
	ListEmployees(ctx context.Context, userID string, filter domain.EmployeeFilter) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employee data
type EmployeeWriterSvc interface {
	CreateEmployee(ctx context.Context, userID string, in domain.EmployeeInput) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, userID, id string, in domain.EmployeeInput) (*domain.Employee, error)
	// DeleteEmployee deactivates the employee instead of removing the row.
	DeleteEmployee(ctx context.Context, userID, id string) error
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}

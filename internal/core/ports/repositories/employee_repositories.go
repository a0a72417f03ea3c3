package repositories

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	ListEmployees(ctx context.Context, userID string, filter domain.EmployeeFilter) ([]domain.Employee, error)

	// FindEmployeeByID returns apperrors.ErrNotFound unless the employee belongs to userID.
	FindEmployeeByID(ctx context.Context, userID, id string) (*domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	CreateEmployee(ctx context.Context, userID string, in domain.EmployeeInput) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, userID, id string, in domain.EmployeeInput) (*domain.Employee, error)

	// DeactivateEmployee clears is_active. Missing rows are not an error.
	DeactivateEmployee(ctx context.Context, userID, id string) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}

package repositories

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// SalaryReader defines read operations for salary data
type SalaryReader interface {
	// ListSalaries returns salaries with their employee summary attached.
	ListSalaries(ctx context.Context, userID string, filter domain.SalaryFilter) ([]domain.Salary, error)
}

// SalaryWriter defines write operations for salary data
type SalaryWriter interface {
	// CreateSalary inserts unless a record for the same employee, month and year
	// exists, in which case it returns apperrors.ErrDuplicate and writes nothing.
	CreateSalary(ctx context.Context, userID string, in domain.SalaryInput) (*domain.Salary, error)
	UpdateSalary(ctx context.Context, userID, id string, in domain.SalaryInput) (*domain.Salary, error)
	DeleteSalary(ctx context.Context, userID, id string) error
}

// SalaryRepositoryFacade combines all salary-related repository interfaces
type SalaryRepositoryFacade interface {
	SalaryReader
	SalaryWriter
}

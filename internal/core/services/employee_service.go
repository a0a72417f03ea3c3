package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
)

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: repo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) ListEmployees(ctx context.Context, userID string, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees", slog.String("user_id", userID))
		return nil, err
	}
	return employees, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, userID string, in domain.EmployeeInput) (*domain.Employee, error) {
	employee, err := s.employeeRepo.CreateEmployee(ctx, userID, in)
	if err != nil {
		s.LogError(ctx, err, "Failed to create employee", slog.String("user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.ID))
	return employee, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, userID, id string, in domain.EmployeeInput) (*domain.Employee, error) {
	if !isRecordID(id) {
		return nil, apperrors.ErrNotFound
	}
	employee, err := s.employeeRepo.UpdateEmployee(ctx, userID, id, in)
	if err != nil {
		s.LogRepoError(ctx, err, "Failed to update employee", slog.String("employee_id", id))
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee deactivates the employee. The row stays so that salary
// history keeps resolving its employee name.
func (s *employeeService) DeleteEmployee(ctx context.Context, userID, id string) error {
	if !isRecordID(id) {
		return nil
	}
	if err := s.employeeRepo.DeactivateEmployee(ctx, userID, id); err != nil {
		s.LogError(ctx, err, "Failed to deactivate employee", slog.String("employee_id", id))
		return err
	}
	s.LogInfo(ctx, "Employee deactivated", slog.String("employee_id", id))
	return nil
}

package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
)

type salaryService struct {
	BaseService
	salaryRepo   portsrepo.SalaryRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
}

func NewSalaryService(repo portsrepo.SalaryRepositoryFacade, employees portsrepo.EmployeeReader) portssvc.SalarySvcFacade {
	return &salaryService{salaryRepo: repo, employeeRepo: employees}
}

var _ portssvc.SalarySvcFacade = (*salaryService)(nil)

func (s *salaryService) ListSalaries(ctx context.Context, userID string, filter domain.SalaryFilter) ([]domain.Salary, error) {
	salaries, err := s.salaryRepo.ListSalaries(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list salaries", slog.String("user_id", userID))
		return nil, err
	}
	return salaries, nil
}

// CreateSalary relies on the (employee, month, year) unique index for
// duplicate detection, so two concurrent requests cannot both insert.
func (s *salaryService) CreateSalary(ctx context.Context, userID string, in domain.SalaryInput) (*domain.Salary, error) {
	if err := s.ensureEmployee(ctx, userID, in.EmployeeID); err != nil {
		return nil, err
	}
	salary, err := s.salaryRepo.CreateSalary(ctx, userID, in)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogInfo(ctx, "Salary already recorded for period",
				slog.String("employee_id", in.EmployeeID),
				slog.Int("month", in.Month),
				slog.Int("year", in.Year))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to create salary", slog.String("employee_id", in.EmployeeID))
		return nil, err
	}
	s.LogInfo(ctx, "Salary created", slog.String("salary_id", salary.ID))
	return salary, nil
}

func (s *salaryService) UpdateSalary(ctx context.Context, userID, id string, in domain.SalaryInput) (*domain.Salary, error) {
	if !isRecordID(id) {
		return nil, apperrors.ErrNotFound
	}
	if err := s.ensureEmployee(ctx, userID, in.EmployeeID); err != nil {
		return nil, err
	}
	salary, err := s.salaryRepo.UpdateSalary(ctx, userID, id, in)
	if err != nil {
		s.LogRepoError(ctx, err, "Failed to update salary", slog.String("salary_id", id))
		return nil, err
	}
	return salary, nil
}

func (s *salaryService) DeleteSalary(ctx context.Context, userID, id string) error {
	if !isRecordID(id) {
		return nil
	}
	if err := s.salaryRepo.DeleteSalary(ctx, userID, id); err != nil {
		s.LogError(ctx, err, "Failed to delete salary", slog.String("salary_id", id))
		return err
	}
	return nil
}

// ensureEmployee rejects employee ids the caller does not own.
func (s *salaryService) ensureEmployee(ctx context.Context, userID, employeeID string) error {
	notFound := apperrors.NewValidationFailedError("employee_id", "Employee not found")
	if !isRecordID(employeeID) {
		return notFound
	}
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, userID, employeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return notFound
		}
		s.LogError(ctx, err, "Failed to look up employee", slog.String("employee_id", employeeID))
		return err
	}
	return nil
}

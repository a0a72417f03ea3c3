package services_test

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, userID string, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) CreateExpense(ctx context.Context, userID string, in domain.ExpenseDetails) (*domain.Expense, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, userID, id string, in domain.ExpenseDetails) (*domain.Expense, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

// --- Mock LiabilityRepository ---
type MockLiabilityRepository struct {
	mock.Mock
}

func (m *MockLiabilityRepository) ListLiabilities(ctx context.Context, userID string, filter domain.LiabilityFilter) ([]domain.Liability, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Liability), args.Error(1)
}

func (m *MockLiabilityRepository) CreateLiability(ctx context.Context, userID string, in domain.LiabilityDetails) (*domain.Liability, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Liability), args.Error(1)
}

func (m *MockLiabilityRepository) UpdateLiability(ctx context.Context, userID, id string, in domain.LiabilityDetails) (*domain.Liability, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Liability), args.Error(1)
}

func (m *MockLiabilityRepository) DeleteLiability(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, userID string, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, userID, id string) (*domain.Employee, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) CreateEmployee(ctx context.Context, userID string, in domain.EmployeeInput) (*domain.Employee, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, userID, id string, in domain.EmployeeInput) (*domain.Employee, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) DeactivateEmployee(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

// --- Mock SalaryRepository ---
type MockSalaryRepository struct {
	mock.Mock
}

func (m *MockSalaryRepository) ListSalaries(ctx context.Context, userID string, filter domain.SalaryFilter) ([]domain.Salary, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Salary), args.Error(1)
}

func (m *MockSalaryRepository) CreateSalary(ctx context.Context, userID string, in domain.SalaryInput) (*domain.Salary, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salary), args.Error(1)
}

func (m *MockSalaryRepository) UpdateSalary(ctx context.Context, userID, id string, in domain.SalaryInput) (*domain.Salary, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salary), args.Error(1)
}

func (m *MockSalaryRepository) DeleteSalary(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

// --- Mock CashflowRepository ---
type MockCashflowRepository struct {
	mock.Mock
}

func (m *MockCashflowRepository) ListCashflows(ctx context.Context, userID string, filter domain.CashflowFilter) ([]domain.Cashflow, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cashflow), args.Error(1)
}

func (m *MockCashflowRepository) CreateCashflow(ctx context.Context, userID string, in domain.CashflowDetails) (*domain.Cashflow, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashflow), args.Error(1)
}

func (m *MockCashflowRepository) UpdateCashflow(ctx context.Context, userID, id string, in domain.CashflowDetails) (*domain.Cashflow, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashflow), args.Error(1)
}

func (m *MockCashflowRepository) DeleteCashflow(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

// --- Mock PDCRepository ---
type MockPDCRepository struct {
	mock.Mock
}

func (m *MockPDCRepository) ListPDCs(ctx context.Context, userID string, filter domain.PDCFilter) ([]domain.PDC, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PDC), args.Error(1)
}

func (m *MockPDCRepository) CreatePDC(ctx context.Context, userID string, in domain.PDCInput) (*domain.PDC, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PDC), args.Error(1)
}

func (m *MockPDCRepository) UpdatePDC(ctx context.Context, userID, id string, in domain.PDCInput) (*domain.PDC, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PDC), args.Error(1)
}

func (m *MockPDCRepository) DeletePDC(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

// --- Mock CapitalRepository ---
type MockCapitalRepository struct {
	mock.Mock
}

func (m *MockCapitalRepository) ListCapitalInjections(ctx context.Context, userID string, filter domain.CapitalFilter) ([]domain.CapitalInjection, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CapitalInjection), args.Error(1)
}

func (m *MockCapitalRepository) CreateCapitalInjection(ctx context.Context, userID string, in domain.CapitalDetails) (*domain.CapitalInjection, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CapitalInjection), args.Error(1)
}

func (m *MockCapitalRepository) UpdateCapitalInjection(ctx context.Context, userID, id string, in domain.CapitalDetails) (*domain.CapitalInjection, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CapitalInjection), args.Error(1)
}

func (m *MockCapitalRepository) DeleteCapitalInjection(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfileByID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpsertProfile(ctx context.Context, userID string, email *string, in domain.ProfileDetails) (*domain.Profile, error) {
	args := m.Called(ctx, userID, email, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

package handlers_test

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) ListExpenses(ctx context.Context, userID string, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, userID string, in domain.ExpenseDetails) (*domain.Expense, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) UpdateExpense(ctx context.Context, userID, id string, in domain.ExpenseDetails) (*domain.Expense, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) DeleteExpense(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Mock SalaryService ---
type MockSalaryService struct {
	mock.Mock
}

func (m *MockSalaryService) ListSalaries(ctx context.Context, userID string, filter domain.SalaryFilter) ([]domain.Salary, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Salary), args.Error(1)
}

func (m *MockSalaryService) CreateSalary(ctx context.Context, userID string, in domain.SalaryInput) (*domain.Salary, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salary), args.Error(1)
}

func (m *MockSalaryService) UpdateSalary(ctx context.Context, userID, id string, in domain.SalaryInput) (*domain.Salary, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salary), args.Error(1)
}

func (m *MockSalaryService) DeleteSalary(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

var _ portssvc.SalarySvcFacade = (*MockSalaryService)(nil)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context, userID string, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, userID string, in domain.EmployeeInput) (*domain.Employee, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, userID, id string, in domain.EmployeeInput) (*domain.Employee, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetDashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

var _ portssvc.DashboardService = (*MockDashboardService)(nil)

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID string, email *string, in domain.ProfileDetails) (*domain.Profile, error) {
	args := m.Called(ctx, userID, email, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

var _ portssvc.ProfileSvcFacade = (*MockProfileService)(nil)

// --- Mock LiabilityService ---
type MockLiabilityService struct {
	mock.Mock
}

func (m *MockLiabilityService) ListLiabilities(ctx context.Context, userID string, filter domain.LiabilityFilter) ([]domain.Liability, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Liability), args.Error(1)
}

func (m *MockLiabilityService) CreateLiability(ctx context.Context, userID string, in domain.LiabilityDetails) (*domain.Liability, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Liability), args.Error(1)
}

func (m *MockLiabilityService) UpdateLiability(ctx context.Context, userID, id string, in domain.LiabilityDetails) (*domain.Liability, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Liability), args.Error(1)
}

func (m *MockLiabilityService) DeleteLiability(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

var _ portssvc.LiabilitySvcFacade = (*MockLiabilityService)(nil)

// --- Mock CashflowService ---
type MockCashflowService struct {
	mock.Mock
}

func (m *MockCashflowService) ListCashflows(ctx context.Context, userID string, filter domain.CashflowFilter) ([]domain.Cashflow, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cashflow), args.Error(1)
}

func (m *MockCashflowService) CreateCashflow(ctx context.Context, userID string, in domain.CashflowDetails) (*domain.Cashflow, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashflow), args.Error(1)
}

func (m *MockCashflowService) UpdateCashflow(ctx context.Context, userID, id string, in domain.CashflowDetails) (*domain.Cashflow, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashflow), args.Error(1)
}

func (m *MockCashflowService) DeleteCashflow(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

var _ portssvc.CashflowSvcFacade = (*MockCashflowService)(nil)

// --- Mock PDCService ---
type MockPDCService struct {
	mock.Mock
}

func (m *MockPDCService) ListPDCs(ctx context.Context, userID string, filter domain.PDCFilter) ([]domain.PDC, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PDC), args.Error(1)
}

func (m *MockPDCService) CreatePDC(ctx context.Context, userID string, in domain.PDCInput) (*domain.PDC, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PDC), args.Error(1)
}

func (m *MockPDCService) UpdatePDC(ctx context.Context, userID, id string, in domain.PDCInput) (*domain.PDC, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PDC), args.Error(1)
}

func (m *MockPDCService) DeletePDC(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

var _ portssvc.PDCSvcFacade = (*MockPDCService)(nil)

// --- Mock CapitalService ---
type MockCapitalService struct {
	mock.Mock
}

func (m *MockCapitalService) ListCapitalInjections(ctx context.Context, userID string, filter domain.CapitalFilter) ([]domain.CapitalInjection, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CapitalInjection), args.Error(1)
}

func (m *MockCapitalService) CreateCapitalInjection(ctx context.Context, userID string, in domain.CapitalDetails) (*domain.CapitalInjection, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CapitalInjection), args.Error(1)
}

func (m *MockCapitalService) UpdateCapitalInjection(ctx context.Context, userID, id string, in domain.CapitalDetails) (*domain.CapitalInjection, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CapitalInjection), args.Error(1)
}

func (m *MockCapitalService) DeleteCapitalInjection(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

var _ portssvc.CapitalSvcFacade = (*MockCapitalService)(nil)

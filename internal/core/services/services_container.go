package services

import (
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Expense:   NewExpenseService(repos.ExpenseRepo),
		Liability: NewLiabilityService(repos.LiabilityRepo),
		Employee:  NewEmployeeService(repos.EmployeeRepo),
		Salary:    NewSalaryService(repos.SalaryRepo, repos.EmployeeRepo),
		Cashflow:  NewCashflowService(repos.CashflowRepo),
		PDC:       NewPDCService(repos.PDCRepo),
		Capital:   NewCapitalService(repos.CapitalRepo),
		Profile:   NewProfileService(repos.ProfileRepo),
		Dashboard: NewDashboardService(repos, WithRecentLimit(cfg.DashboardRecentLimit)),
	}
}

package pgsql

import (
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExpenseRepo:   newPgxExpenseRepository(dbPool),
		LiabilityRepo: newPgxLiabilityRepository(dbPool),
		EmployeeRepo:  newPgxEmployeeRepository(dbPool),
		SalaryRepo:    newPgxSalaryRepository(dbPool),
		CashflowRepo:  newPgxCashflowRepository(dbPool),
		PDCRepo:       newPgxPDCRepository(dbPool),
		CapitalRepo:   newPgxCapitalRepository(dbPool),
		ProfileRepo:   newPgxProfileRepository(dbPool),
	}
}

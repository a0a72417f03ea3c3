package pgsql

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) *PgxEmployeeRepository {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `id, user_id, name, position, monthly_salary, hire_date, is_active, created_at, updated_at`

func employeeListQuery(userID string, f domain.EmployeeFilter) *scopedQuery {
	return newScopedQuery(`SELECT `+employeeColumns+` FROM employees`, "user_id", userID).
		EqBool("is_active", f.Active).
		Search(f.Search, "name", "position").
		OrderBy("name ASC", "created_at DESC", "id")
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, userID string, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	rows, err := queryList[models.Employee](ctx, r.Pool, employeeListQuery(userID, filter), "employees")
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainEmployee), nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, userID, id string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND user_id = $2`
	row, err := queryOne[models.Employee](ctx, r.Pool, query, "employee", id, userID)
	if err != nil {
		return nil, err
	}
	e := mapping.ToDomainEmployee(*row)
	return &e, nil
}

func (r *PgxEmployeeRepository) CreateEmployee(ctx context.Context, userID string, in domain.EmployeeInput) (*domain.Employee, error) {
	query := `
		INSERT INTO employees (user_id, name, position, monthly_salary, hire_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + employeeColumns
	row, err := queryOne[models.Employee](ctx, r.Pool, query, "employee",
		userID, in.Name, in.Position, in.MonthlySalary, in.HireDate, in.Active())
	if err != nil {
		return nil, err
	}
	e := mapping.ToDomainEmployee(*row)
	return &e, nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, userID, id string, in domain.EmployeeInput) (*domain.Employee, error) {
	query := `
		UPDATE employees
		SET name = $3, position = $4, monthly_salary = $5, hire_date = $6,
			is_active = $7, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + employeeColumns
	row, err := queryOne[models.Employee](ctx, r.Pool, query, "employee",
		id, userID, in.Name, in.Position, in.MonthlySalary, in.HireDate, in.Active())
	if err != nil {
		return nil, err
	}
	e := mapping.ToDomainEmployee(*row)
	return &e, nil
}

func (r *PgxEmployeeRepository) DeactivateEmployee(ctx context.Context, userID, id string) error {
	return r.exec(ctx,
		`UPDATE employees SET is_active = false, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		"deactivate employee", id, userID)
}

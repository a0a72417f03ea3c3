package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSalaryRepository struct {
	BaseRepository
}

func newPgxSalaryRepository(pool *pgxpool.Pool) *PgxSalaryRepository {
	return &PgxSalaryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SalaryRepositoryFacade = (*PgxSalaryRepository)(nil)

const salaryColumns = `id, user_id, employee_id, month, year, amount, status, paid_date, notes, created_at, updated_at`

// salaryJoinSelect reads salaries aliased as s together with the employee summary.
const salaryJoinSelect = `
SELECT
	s.id, s.user_id, s.employee_id, s.month, s.year, s.amount, s.status, s.paid_date, s.notes,
	s.created_at, s.updated_at,
	e.name AS employee_name, e.position AS employee_position
FROM %s s
LEFT JOIN employees e ON e.id = s.employee_id`

func salarySelectFrom(source string) string {
	return fmt.Sprintf(salaryJoinSelect, source)
}

func salaryListQuery(userID string, f domain.SalaryFilter) *scopedQuery {
	return newScopedQuery(salarySelectFrom("salaries"), "s.user_id", userID).
		Eq("s.employee_id", f.EmployeeID).
		EqInt("s.month", f.Month).
		EqInt("s.year", f.Year).
		Eq("s.status", f.Status).
		OrderBy("s.year DESC", "s.month DESC", "s.created_at DESC", "s.id")
}

func (r *PgxSalaryRepository) ListSalaries(ctx context.Context, userID string, filter domain.SalaryFilter) ([]domain.Salary, error) {
	rows, err := queryList[models.Salary](ctx, r.Pool, salaryListQuery(userID, filter), "salaries")
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainSalary), nil
}

// CreateSalary relies on the (user_id, employee_id, month, year) unique index:
// a conflicting insert writes nothing and returns no row.
func (r *PgxSalaryRepository) CreateSalary(ctx context.Context, userID string, in domain.SalaryInput) (*domain.Salary, error) {
	query := `
		WITH inserted AS (
			INSERT INTO salaries (user_id, employee_id, month, year, amount, status, paid_date, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (user_id, employee_id, month, year) DO NOTHING
			RETURNING ` + salaryColumns + `
		)` + salarySelectFrom("inserted")
	row, err := queryOne[models.Salary](ctx, r.Pool, query, "salary",
		userID, in.EmployeeID, in.Month, in.Year, in.Amount, string(in.StatusOrDefault()), in.PaidDate, in.Notes)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewConflictError("Salary record already exists for this employee, month, and year")
		}
		return nil, err
	}
	s := mapping.ToDomainSalary(*row)
	return &s, nil
}

func (r *PgxSalaryRepository) UpdateSalary(ctx context.Context, userID, id string, in domain.SalaryInput) (*domain.Salary, error) {
	query := `
		WITH updated AS (
			UPDATE salaries
			SET employee_id = $3, month = $4, year = $5, amount = $6,
				status = $7, paid_date = $8, notes = $9, updated_at = NOW()
			WHERE id = $1 AND user_id = $2
			RETURNING ` + salaryColumns + `
		)` + salarySelectFrom("updated")
	row, err := queryOne[models.Salary](ctx, r.Pool, query, "salary",
		id, userID, in.EmployeeID, in.Month, in.Year, in.Amount, string(in.StatusOrDefault()), in.PaidDate, in.Notes)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("Salary record already exists for this employee, month, and year")
		}
		return nil, err
	}
	s := mapping.ToDomainSalary(*row)
	return &s, nil
}

func (r *PgxSalaryRepository) DeleteSalary(ctx context.Context, userID, id string) error {
	return r.exec(ctx, `DELETE FROM salaries WHERE id = $1 AND user_id = $2`, "delete salary", id, userID)
}

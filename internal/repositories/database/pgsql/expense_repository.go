package pgsql

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `id, user_id, category, amount, date, notes, created_at, updated_at`

func expenseListQuery(userID string, f domain.ExpenseFilter) *scopedQuery {
	return newScopedQuery(`SELECT `+expenseColumns+` FROM expenses`, "user_id", userID).
		Eq("category", f.Category).
		InMonth("date", f.Month).
		Search(f.Search, "notes", "category").
		OrderBy("date DESC", "created_at DESC", "id")
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, userID string, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	rows, err := queryList[models.Expense](ctx, r.Pool, expenseListQuery(userID, filter), "expenses")
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainExpense), nil
}

func (r *PgxExpenseRepository) CreateExpense(ctx context.Context, userID string, in domain.ExpenseDetails) (*domain.Expense, error) {
	query := `
		INSERT INTO expenses (user_id, category, amount, date, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + expenseColumns
	row, err := queryOne[models.Expense](ctx, r.Pool, query, "expense",
		userID, string(in.Category), in.Amount, in.Date, in.Notes)
	if err != nil {
		return nil, err
	}
	e := mapping.ToDomainExpense(*row)
	return &e, nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, userID, id string, in domain.ExpenseDetails) (*domain.Expense, error) {
	query := `
		UPDATE expenses
		SET category = $3, amount = $4, date = $5, notes = $6, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + expenseColumns
	row, err := queryOne[models.Expense](ctx, r.Pool, query, "expense",
		id, userID, string(in.Category), in.Amount, in.Date, in.Notes)
	if err != nil {
		return nil, err
	}
	e := mapping.ToDomainExpense(*row)
	return &e, nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, userID, id string) error {
	return r.exec(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2`, "delete expense", id, userID)
}

package pgsql

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCashflowRepository struct {
	BaseRepository
}

func newPgxCashflowRepository(pool *pgxpool.Pool) *PgxCashflowRepository {
	return &PgxCashflowRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CashflowRepositoryFacade = (*PgxCashflowRepository)(nil)

const cashflowColumns = `id, user_id, type, category, amount, date, description, reference_id, reference_type, created_at, updated_at`

func cashflowListQuery(userID string, f domain.CashflowFilter) *scopedQuery {
	return newScopedQuery(`SELECT `+cashflowColumns+` FROM cashflow`, "user_id", userID).
		Eq("type", f.Type).
		Eq("category", f.Category).
		InMonth("date", f.Month).
		Search(f.Search, "category", "description").
		OrderBy("date DESC", "created_at DESC", "id")
}

func (r *PgxCashflowRepository) ListCashflows(ctx context.Context, userID string, filter domain.CashflowFilter) ([]domain.Cashflow, error) {
	rows, err := queryList[models.Cashflow](ctx, r.Pool, cashflowListQuery(userID, filter), "cashflow")
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainCashflow), nil
}

func (r *PgxCashflowRepository) CreateCashflow(ctx context.Context, userID string, in domain.CashflowDetails) (*domain.Cashflow, error) {
	query := `
		INSERT INTO cashflow (user_id, type, category, amount, date, description, reference_id, reference_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + cashflowColumns
	row, err := queryOne[models.Cashflow](ctx, r.Pool, query, "cashflow entry",
		userID, string(in.Type), in.Category, in.Amount, in.Date, in.Description, in.ReferenceID, in.ReferenceType)
	if err != nil {
		return nil, err
	}
	c := mapping.ToDomainCashflow(*row)
	return &c, nil
}

func (r *PgxCashflowRepository) UpdateCashflow(ctx context.Context, userID, id string, in domain.CashflowDetails) (*domain.Cashflow, error) {
	query := `
		UPDATE cashflow
		SET type = $3, category = $4, amount = $5, date = $6,
			description = $7, reference_id = $8, reference_type = $9, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + cashflowColumns
	row, err := queryOne[models.Cashflow](ctx, r.Pool, query, "cashflow entry",
		id, userID, string(in.Type), in.Category, in.Amount, in.Date, in.Description, in.ReferenceID, in.ReferenceType)
	if err != nil {
		return nil, err
	}
	c := mapping.ToDomainCashflow(*row)
	return &c, nil
}

func (r *PgxCashflowRepository) DeleteCashflow(ctx context.Context, userID, id string) error {
	return r.exec(ctx, `DELETE FROM cashflow WHERE id = $1 AND user_id = $2`, "delete cashflow entry", id, userID)
}

package pgsql

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLiabilityRepository struct {
	BaseRepository
}

func newPgxLiabilityRepository(pool *pgxpool.Pool) *PgxLiabilityRepository {
	return &PgxLiabilityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LiabilityRepositoryFacade = (*PgxLiabilityRepository)(nil)

const liabilityColumns = `id, user_id, type, name, amount, outstanding_amount, due_date, interest_rate, notes, created_at, updated_at`

func liabilityListQuery(userID string, f domain.LiabilityFilter) *scopedQuery {
	return newScopedQuery(`SELECT `+liabilityColumns+` FROM liabilities`, "user_id", userID).
		Eq("type", f.Type).
		Search(f.Search, "name", "notes").
		OrderBy("created_at DESC", "id")
}

func (r *PgxLiabilityRepository) ListLiabilities(ctx context.Context, userID string, filter domain.LiabilityFilter) ([]domain.Liability, error) {
	rows, err := queryList[models.Liability](ctx, r.Pool, liabilityListQuery(userID, filter), "liabilities")
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainLiability), nil
}

func (r *PgxLiabilityRepository) CreateLiability(ctx context.Context, userID string, in domain.LiabilityDetails) (*domain.Liability, error) {
	query := `
		INSERT INTO liabilities (user_id, type, name, amount, outstanding_amount, due_date, interest_rate, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + liabilityColumns
	row, err := queryOne[models.Liability](ctx, r.Pool, query, "liability",
		userID, string(in.Type), in.Name, in.Amount, in.OutstandingAmount, in.DueDate, in.InterestRate, in.Notes)
	if err != nil {
		return nil, err
	}
	l := mapping.ToDomainLiability(*row)
	return &l, nil
}

func (r *PgxLiabilityRepository) UpdateLiability(ctx context.Context, userID, id string, in domain.LiabilityDetails) (*domain.Liability, error) {
	query := `
		UPDATE liabilities
		SET type = $3, name = $4, amount = $5, outstanding_amount = $6,
			due_date = $7, interest_rate = $8, notes = $9, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + liabilityColumns
	row, err := queryOne[models.Liability](ctx, r.Pool, query, "liability",
		id, userID, string(in.Type), in.Name, in.Amount, in.OutstandingAmount, in.DueDate, in.InterestRate, in.Notes)
	if err != nil {
		return nil, err
	}
	l := mapping.ToDomainLiability(*row)
	return &l, nil
}

func (r *PgxLiabilityRepository) DeleteLiability(ctx context.Context, userID, id string) error {
	return r.exec(ctx, `DELETE FROM liabilities WHERE id = $1 AND user_id = $2`, "delete liability", id, userID)
}

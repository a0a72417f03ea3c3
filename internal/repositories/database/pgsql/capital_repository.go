package pgsql

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCapitalRepository struct {
	BaseRepository
}

func newPgxCapitalRepository(pool *pgxpool.Pool) *PgxCapitalRepository {
	return &PgxCapitalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CapitalRepositoryFacade = (*PgxCapitalRepository)(nil)

const capitalColumns = `id, user_id, type, amount, date, source, description, notes, created_at, updated_at`

func capitalListQuery(userID string, f domain.CapitalFilter) *scopedQuery {
	return newScopedQuery(`SELECT `+capitalColumns+` FROM capital_injections`, "user_id", userID).
		Eq("type", f.Type).
		Eq("source", f.Source).
		InMonth("date", f.Month).
		Search(f.Search, "source", "description").
		OrderBy("date DESC", "created_at DESC", "id")
}

func (r *PgxCapitalRepository) ListCapitalInjections(ctx context.Context, userID string, filter domain.CapitalFilter) ([]domain.CapitalInjection, error) {
	rows, err := queryList[models.CapitalInjection](ctx, r.Pool, capitalListQuery(userID, filter), "capital injections")
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainCapitalInjection), nil
}

func (r *PgxCapitalRepository) CreateCapitalInjection(ctx context.Context, userID string, in domain.CapitalDetails) (*domain.CapitalInjection, error) {
	query := `
		INSERT INTO capital_injections (user_id, type, amount, date, source, description, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + capitalColumns
	row, err := queryOne[models.CapitalInjection](ctx, r.Pool, query, "capital injection",
		userID, string(in.Type), in.Amount, in.Date, in.Source, in.Description, in.Notes)
	if err != nil {
		return nil, err
	}
	c := mapping.ToDomainCapitalInjection(*row)
	return &c, nil
}

func (r *PgxCapitalRepository) UpdateCapitalInjection(ctx context.Context, userID, id string, in domain.CapitalDetails) (*domain.CapitalInjection, error) {
	query := `
		UPDATE capital_injections
		SET type = $3, amount = $4, date = $5, source = $6, description = $7, notes = $8, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + capitalColumns
	row, err := queryOne[models.CapitalInjection](ctx, r.Pool, query, "capital injection",
		id, userID, string(in.Type), in.Amount, in.Date, in.Source, in.Description, in.Notes)
	if err != nil {
		return nil, err
	}
	c := mapping.ToDomainCapitalInjection(*row)
	return &c, nil
}

func (r *PgxCapitalRepository) DeleteCapitalInjection(ctx context.Context, userID, id string) error {
	return r.exec(ctx, `DELETE FROM capital_injections WHERE id = $1 AND user_id = $2`, "delete capital injection", id, userID)
}

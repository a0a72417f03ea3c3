package pgsql

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/models"
	"github.com/SscSPs/bizbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPDCRepository struct {
	BaseRepository
}

func newPgxPDCRepository(pool *pgxpool.Pool) *PgxPDCRepository {
	return &PgxPDCRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PDCRepositoryFacade = (*PgxPDCRepository)(nil)

const pdcColumns = `id, user_id, cheque_number, bank_name, amount, issue_date, due_date, status, payee, purpose, notes, created_at, updated_at`

func pdcListQuery(userID string, f domain.PDCFilter) *scopedQuery {
	return newScopedQuery(`SELECT `+pdcColumns+` FROM bank_pdc`, "user_id", userID).
		Eq("status", f.Status).
		Eq("bank_name", f.BankName).
		Search(f.Search, "cheque_number", "payee", "purpose").
		OrderBy("due_date ASC", "created_at DESC", "id")
}

func (r *PgxPDCRepository) ListPDCs(ctx context.Context, userID string, filter domain.PDCFilter) ([]domain.PDC, error) {
	rows, err := queryList[models.PDC](ctx, r.Pool, pdcListQuery(userID, filter), "cheques")
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainPDC), nil
}

func (r *PgxPDCRepository) CreatePDC(ctx context.Context, userID string, in domain.PDCInput) (*domain.PDC, error) {
	query := `
		INSERT INTO bank_pdc (user_id, cheque_number, bank_name, amount, issue_date, due_date, status, payee, purpose, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + pdcColumns
	row, err := queryOne[models.PDC](ctx, r.Pool, query, "cheque",
		userID, in.ChequeNumber, in.BankName, in.Amount, in.IssueDate, in.DueDate, string(in.StatusOrDefault()), in.Payee, in.Purpose, in.Notes)
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainPDC(*row)
	return &p, nil
}

func (r *PgxPDCRepository) UpdatePDC(ctx context.Context, userID, id string, in domain.PDCInput) (*domain.PDC, error) {
	query := `
		UPDATE bank_pdc
		SET cheque_number = $3, bank_name = $4, amount = $5, issue_date = $6, due_date = $7,
			status = $8, payee = $9, purpose = $10, notes = $11, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + pdcColumns
	row, err := queryOne[models.PDC](ctx, r.Pool, query, "cheque",
		id, userID, in.ChequeNumber, in.BankName, in.Amount, in.IssueDate, in.DueDate, string(in.StatusOrDefault()), in.Payee, in.Purpose, in.Notes)
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainPDC(*row)
	return &p, nil
}

func (r *PgxPDCRepository) DeletePDC(ctx context.Context, userID, id string) error {
	return r.exec(ctx, `DELETE FROM bank_pdc WHERE id = $1 AND user_id = $2`, "delete cheque", id, userID)
}

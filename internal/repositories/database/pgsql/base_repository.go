package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// queryList runs a composed list query and collects every row into M.
// An empty result is an empty slice.
func queryList[M any](ctx context.Context, pool *pgxpool.Pool, q *scopedQuery, what string) ([]M, error) {
	sql, args, err := q.Build()
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query "+what, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect "+what+" rows", err)
	}
	if items == nil {
		items = []M{}
	}
	return items, nil
}

// queryOne runs a statement expected to return at most one row.
// No row maps to apperrors.ErrNotFound.
func queryOne[M any](ctx context.Context, pool *pgxpool.Pool, sql string, what string, args ...any) (*M, error) {
	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateWriteError(err, what)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[M])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateWriteError(err, what)
	}
	return &item, nil
}

// exec runs a statement whose affected row count does not matter.
func (r *BaseRepository) exec(ctx context.Context, sql string, what string, args ...any) error {
	if _, err := r.Pool.Exec(ctx, sql, args...); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to "+what, err)
	}
	return nil
}

func translateWriteError(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewConflictError(what + " already exists")
		case pgForeignKeyViolation:
			// salaries.employee_id is the only foreign key
			return apperrors.NewValidationFailedError("employee_id", "Employee not found")
		}
	}
	return apperrors.NewAppError(http.StatusInternalServerError, "failed to write "+what, err)
}

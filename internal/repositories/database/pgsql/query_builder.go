package pgsql

import (
	"fmt"
	"strings"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// scopedQuery composes a list query that is always restricted to one owner.
// The owner predicate is added by the constructor and cannot be skipped.
type scopedQuery struct {
	selectSQL string
	where     []string
	args      []any
	orderBy   []string
	err       error
}

func newScopedQuery(selectSQL, ownerColumn, userID string) *scopedQuery {
	q := &scopedQuery{selectSQL: strings.TrimSpace(selectSQL)}
	q.where = append(q.where, ownerColumn+" = "+q.bind(userID))
	return q
}

func (q *scopedQuery) bind(v any) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("$%d", len(q.args))
}

// Eq adds column = value unless value is empty.
func (q *scopedQuery) Eq(column, value string) *scopedQuery {
	if value == "" {
		return q
	}
	q.where = append(q.where, column+" = "+q.bind(value))
	return q
}

func (q *scopedQuery) EqInt(column string, value *int) *scopedQuery {
	if value == nil {
		return q
	}
	q.where = append(q.where, column+" = "+q.bind(*value))
	return q
}

func (q *scopedQuery) EqBool(column string, value *bool) *scopedQuery {
	if value == nil {
		return q
	}
	q.where = append(q.where, column+" = "+q.bind(*value))
	return q
}

// InMonth restricts column to the "YYYY-MM" bucket: first of month inclusive,
// first of next month exclusive.
func (q *scopedQuery) InMonth(column, bucket string) *scopedQuery {
	if bucket == "" {
		return q
	}
	start, end, err := domain.MonthRange(bucket)
	if err != nil {
		q.err = apperrors.NewValidationFailedError("date", "Date filter must be in YYYY-MM format")
		return q
	}
	q.where = append(q.where,
		column+" >= "+q.bind(start),
		column+" < "+q.bind(end),
	)
	return q
}

// Search matches term case-insensitively as a substring of any of columns.
func (q *scopedQuery) Search(term string, columns ...string) *scopedQuery {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return q
	}
	ph := q.bind("%" + escapeLike(term) + "%")
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = c + " ILIKE " + ph
	}
	q.where = append(q.where, "("+strings.Join(parts, " OR ")+")")
	return q
}

// OrderBy sets the ordering terms, applied even when no filter is set.
func (q *scopedQuery) OrderBy(terms ...string) *scopedQuery {
	q.orderBy = append(q.orderBy, terms...)
	return q
}

// Build returns the SQL and its positional arguments.
func (q *scopedQuery) Build() (string, []any, error) {
	if q.err != nil {
		return "", nil, q.err
	}
	var sb strings.Builder
	sb.WriteString(q.selectSQL)
	sb.WriteString(" WHERE ")
	sb.WriteString(strings.Join(q.where, " AND "))
	if len(q.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(q.orderBy, ", "))
	}
	return sb.String(), q.args, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

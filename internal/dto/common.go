package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// DataResponse is the success envelope for reads and writes.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is returned with 400 when a payload fails validation.
type ValidationErrorResponse struct {
	Error   string                 `json:"error"`
	Details []apperrors.FieldError `json:"details"`
}

// SuccessResponse is returned by deletes.
type SuccessResponse struct {
	Success bool `json:"success"`
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

// mapSlice never returns nil so empty lists serialize as [].
func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestConflictErrorMatchesDuplicate(t *testing.T) {
	err := fmt.Errorf("saving salary: %w", apperrors.NewConflictError("already there"))

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.Code)
	assert.Equal(t, "already there", appErr.Message)
}

func TestNotFoundErrorMatchesSentinel(t *testing.T) {
	assert.ErrorIs(t, apperrors.NewNotFoundError("gone"), apperrors.ErrNotFound)
}

func TestValidationDetails(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", apperrors.NewValidationFailedError("employee_id", "Employee not found"))

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	details, ok := apperrors.ValidationDetails(err)
	assert.True(t, ok)
	assert.Equal(t, []apperrors.FieldError{{Field: "employee_id", Message: "Employee not found"}}, details)

	_, ok = apperrors.ValidationDetails(apperrors.ErrNotFound)
	assert.False(t, ok)
}

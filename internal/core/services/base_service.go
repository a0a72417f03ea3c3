package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogRepoError logs a failed repository call. Misses and conflicts are
// client-visible outcomes and go out at warn level.
func (s *BaseService) LogRepoError(ctx context.Context, err error, msg string, keyvals ...any) {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrDuplicate) {
		args := make([]any, 0, len(keyvals)+1)
		args = append(args, slog.String("error", err.Error()))
		args = append(args, keyvals...)
		s.GetLogger(ctx).Warn(msg, args...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// isRecordID reports whether id can name a stored row. Rows are keyed by
// UUID, so anything else can never match and is handled without a query.
func isRecordID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

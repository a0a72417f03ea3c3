package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// DashboardService computes the per-user dashboard.
type DashboardService interface {
	GetDashboard(ctx context.Context, userID string) (*domain.Dashboard, error)
}

package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

const defaultRecentLimit = 5

type dashboardService struct {
	BaseService
	repos       portsrepo.RepositoryProvider
	recentLimit int
}

// DashboardServiceOption is a functional option for configuring the dashboard service
type DashboardServiceOption func(*dashboardService)

// WithRecentLimit caps the recent expense and salary lists.
func WithRecentLimit(limit int) DashboardServiceOption {
	return func(s *dashboardService) {
		if limit > 0 {
			s.recentLimit = limit
		}
	}
}

// NewDashboardService creates a dashboard service reading from every entity repository
func NewDashboardService(repos portsrepo.RepositoryProvider, options ...DashboardServiceOption) portssvc.DashboardService {
	svc := &dashboardService{
		repos:       repos,
		recentLimit: defaultRecentLimit,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DashboardService = (*dashboardService)(nil)

// GetDashboard loads the six record sets concurrently and fails as a whole
// if any one of them fails.
func (s *dashboardService) GetDashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	var in domain.DashboardInputs
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		in.Expenses, err = s.repos.ExpenseRepo.ListExpenses(gctx, userID, domain.ExpenseFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		in.Liabilities, err = s.repos.LiabilityRepo.ListLiabilities(gctx, userID, domain.LiabilityFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		in.Salaries, err = s.repos.SalaryRepo.ListSalaries(gctx, userID, domain.SalaryFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		in.Cashflows, err = s.repos.CashflowRepo.ListCashflows(gctx, userID, domain.CashflowFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		in.PendingPDCs, err = s.repos.PDCRepo.ListPDCs(gctx, userID, domain.PDCFilter{Status: string(domain.PDCPending)})
		return err
	})
	g.Go(func() error {
		var err error
		in.Capital, err = s.repos.CapitalRepo.ListCapitalInjections(gctx, userID, domain.CapitalFilter{})
		return err
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load dashboard data", slog.String("user_id", userID))
		return nil, err
	}

	return &domain.Dashboard{
		Stats:          domain.SummarizeDashboard(in),
		RecentExpenses: domain.RecentExpenses(in.Expenses, s.recentLimit),
		RecentSalaries: domain.RecentSalaries(in.Salaries, s.recentLimit),
	}, nil
}

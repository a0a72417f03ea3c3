package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DashboardStats are the six headline figures of the dashboard.
type DashboardStats struct {
	TotalExpenses    decimal.Decimal
	TotalLiabilities decimal.Decimal // sum of outstanding amounts
	TotalSalaries    decimal.Decimal
	TotalCashflow    decimal.Decimal // inflow minus outflow
	PendingPDC       decimal.Decimal
	CapitalInjected  decimal.Decimal
}

// Dashboard is the full dashboard payload for one user.
type Dashboard struct {
	Stats          DashboardStats
	RecentExpenses []Expense
	RecentSalaries []Salary
}

// DashboardInputs are the owner-scoped record sets the dashboard is computed from.
// PendingPDCs is expected to hold only cheques in the pending status; anything
// else is ignored.
type DashboardInputs struct {
	Expenses    []Expense
	Liabilities []Liability
	Salaries    []Salary
	Cashflows   []Cashflow
	PendingPDCs []PDC
	Capital     []CapitalInjection
}

// SummarizeDashboard folds the record sets into DashboardStats. Empty sets sum to zero.
func SummarizeDashboard(in DashboardInputs) DashboardStats {
	stats := DashboardStats{
		TotalExpenses:    decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalSalaries:    decimal.Zero,
		TotalCashflow:    decimal.Zero,
		PendingPDC:       decimal.Zero,
		CapitalInjected:  decimal.Zero,
	}
	for _, e := range in.Expenses {
		stats.TotalExpenses = stats.TotalExpenses.Add(e.Amount)
	}
	for _, l := range in.Liabilities {
		stats.TotalLiabilities = stats.TotalLiabilities.Add(l.OutstandingAmount)
	}
	for _, s := range in.Salaries {
		stats.TotalSalaries = stats.TotalSalaries.Add(s.Amount)
	}
	for _, c := range in.Cashflows {
		switch c.Type {
		case CashflowInflow:
			stats.TotalCashflow = stats.TotalCashflow.Add(c.Amount)
		case CashflowOutflow:
			stats.TotalCashflow = stats.TotalCashflow.Sub(c.Amount)
		}
	}
	for _, p := range in.PendingPDCs {
		if p.Status == PDCPending {
			stats.PendingPDC = stats.PendingPDC.Add(p.Amount)
		}
	}
	for _, c := range in.Capital {
		stats.CapitalInjected = stats.CapitalInjected.Add(c.Amount)
	}
	return stats
}

// RecentExpenses returns up to limit expenses, most recently created first.
func RecentExpenses(expenses []Expense, limit int) []Expense {
	out := append([]Expense(nil), expenses...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return truncate(out, limit)
}

// RecentSalaries returns up to limit salaries, most recently created first.
func RecentSalaries(salaries []Salary, limit int) []Salary {
	out := append([]Salary(nil), salaries...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return truncate(out, limit)
}

func truncate[T any](items []T, limit int) []T {
	if items == nil {
		return []T{}
	}
	if limit >= 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

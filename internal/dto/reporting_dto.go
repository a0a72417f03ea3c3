package dto

import (
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

type DashboardStatsResponse struct {
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalSalaries    decimal.Decimal `json:"totalSalaries"`
	TotalCashflow    decimal.Decimal `json:"totalCashflow"`
	PendingPDC       decimal.Decimal `json:"pendingPDC"`
	CapitalInjected  decimal.Decimal `json:"capitalInjected"`
}

type DashboardResponse struct {
	Stats          DashboardStatsResponse `json:"stats"`
	RecentExpenses []ExpenseResponse      `json:"recentExpenses"`
	RecentSalaries []SalaryResponse       `json:"recentSalaries"`
}

func ToDashboardResponse(d domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		Stats: DashboardStatsResponse{
			TotalExpenses:    d.Stats.TotalExpenses,
			TotalLiabilities: d.Stats.TotalLiabilities,
			TotalSalaries:    d.Stats.TotalSalaries,
			TotalCashflow:    d.Stats.TotalCashflow,
			PendingPDC:       d.Stats.PendingPDC,
			CapitalInjected:  d.Stats.CapitalInjected,
		},
		RecentExpenses: ToExpenseResponses(d.RecentExpenses),
		RecentSalaries: ToSalaryResponses(d.RecentSalaries),
	}
}

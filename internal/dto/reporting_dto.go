package dto

import (
	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/utils"
	"github.com/shopspring/decimal"
)

// FinanceSummaryResponse represents an aggregated finance summary response.
// Category maps carry the full canonical category universe, zero-filled.
type FinanceSummaryResponse struct {
	FromDate          string                     `json:"fromDate"`
	ToDate            string                     `json:"toDate"`
	TotalIncome       decimal.Decimal            `json:"totalIncome"`
	TotalExpense      decimal.Decimal            `json:"totalExpense"`
	Balance           decimal.Decimal            `json:"balance"`
	BalanceFormatted  string                     `json:"balanceFormatted"`
	IncomeByCategory  map[string]decimal.Decimal `json:"incomeByCategory"`
	ExpenseByCategory map[string]decimal.Decimal `json:"expenseByCategory"`
}

// MonthlyReportResponse represents one month's totals in a yearly series.
type MonthlyReportResponse struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// MonthlySeriesResponse represents a full year of monthly reports, months
// ordered ascending 1..12. The ordering is a contract consumed by charts.
type MonthlySeriesResponse struct {
	Year   int                     `json:"year"`
	Months []MonthlyReportResponse `json:"months"`
}

func toCategoryMap(m map[domain.TransactionCategory]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(m))
	for category, amount := range m {
		out[string(category)] = amount
	}
	return out
}

// ToFinanceSummaryResponse converts a domain summary to its response DTO.
func ToFinanceSummaryResponse(summary domain.FinanceSummary, fromDate, toDate string) FinanceSummaryResponse {
	return FinanceSummaryResponse{
		FromDate:          fromDate,
		ToDate:            toDate,
		TotalIncome:       summary.TotalIncome,
		TotalExpense:      summary.TotalExpense,
		Balance:           summary.Balance,
		BalanceFormatted:  utils.FormatIDR(summary.Balance),
		IncomeByCategory:  toCategoryMap(summary.IncomeByCategory),
		ExpenseByCategory: toCategoryMap(summary.ExpenseByCategory),
	}
}

// ToMonthlySeriesResponse converts a year of monthly reports to its DTO.
func ToMonthlySeriesResponse(year int, reports []domain.MonthlyFinanceReport) MonthlySeriesResponse {
	months := make([]MonthlyReportResponse, len(reports))
	for i, report := range reports {
		months[i] = MonthlyReportResponse{
			Year:    report.Year,
			Month:   report.Month,
			Income:  report.TotalIncome,
			Expense: report.TotalExpense,
			Balance: report.Balance,
		}
	}
	return MonthlySeriesResponse{Year: year, Months: months}
}

package domain

import (
	"github.com/shopspring/decimal"
)

// FinanceSummary is a derived, read-only aggregation of transactions over a
// date range. Category maps are zero-filled over the canonical category
// universe so consumers always see the full, stably ordered set.
type FinanceSummary struct {
	TotalIncome       decimal.Decimal                         `json:"totalIncome"`
	TotalExpense      decimal.Decimal                         `json:"totalExpense"`
	Balance           decimal.Decimal                         `json:"balance"` // TotalIncome - TotalExpense, exactly
	IncomeByCategory  map[TransactionCategory]decimal.Decimal `json:"incomeByCategory"`
	ExpenseByCategory map[TransactionCategory]decimal.Decimal `json:"expenseByCategory"`
}

// MonthlyFinanceReport is a FinanceSummary pinned to one calendar month.
type MonthlyFinanceReport struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1..12
	FinanceSummary
}

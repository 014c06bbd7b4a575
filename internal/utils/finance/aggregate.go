// Package finance holds the pure aggregation logic that turns transaction
// sets into period summaries. Everything here is deterministic and free of
// persistence concerns; services feed it transactions and forward the result.
package finance

import (
	"time"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/apperrors"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateRange is an inclusive-inclusive calendar date window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Year returns the range covering a full calendar year.
func Year(year int) DateRange {
	return DateRange{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Month returns the range covering one calendar month.
func Month(year int, month time.Month) DateRange {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{
		Start: start,
		End:   start.AddDate(0, 1, -1),
	}
}

// Contains reports whether d falls within the range. Comparison is at
// calendar-date granularity; a transaction exactly on a boundary is included.
func (r DateRange) Contains(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}

// zeroFilledCategories builds a category->amount map covering the full
// canonical universe for a transaction type, all entries zero.
func zeroFilledCategories(t domain.TransactionType) map[domain.TransactionCategory]decimal.Decimal {
	cats := domain.CategoriesFor(t)
	m := make(map[domain.TransactionCategory]decimal.Decimal, len(cats))
	for _, c := range cats {
		m[c] = decimal.Zero
	}
	return m
}

func emptySummary() domain.FinanceSummary {
	return domain.FinanceSummary{
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		Balance:           decimal.Zero,
		IncomeByCategory:  zeroFilledCategories(domain.Income),
		ExpenseByCategory: zeroFilledCategories(domain.Expense),
	}
}

func accrue(summary *domain.FinanceSummary, txn domain.Transaction) {
	switch txn.Type {
	case domain.Income:
		summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
		summary.IncomeByCategory[txn.Category] = summary.IncomeByCategory[txn.Category].Add(txn.Amount)
	case domain.Expense:
		summary.TotalExpense = summary.TotalExpense.Add(txn.Amount)
		summary.ExpenseByCategory[txn.Category] = summary.ExpenseByCategory[txn.Category].Add(txn.Amount)
	}
}

// Summarize reduces a transaction collection over an inclusive date range into
// a FinanceSummary. Transactions outside the range are excluded. Accumulation
// is commutative, so input order never affects the result, and all arithmetic
// is exact decimal. Returns apperrors.ErrInvalidRange when start is after end.
func Summarize(transactions []domain.Transaction, r DateRange) (domain.FinanceSummary, error) {
	if r.Start.After(r.End) {
		return domain.FinanceSummary{}, apperrors.ErrInvalidRange
	}

	summary := emptySummary()
	for _, txn := range transactions {
		if !r.Contains(txn.Date) {
			continue
		}
		accrue(&summary, txn)
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary, nil
}

// SummarizeAll reduces a transaction collection with no date window. Every
// transaction participates regardless of how it is dated.
func SummarizeAll(transactions []domain.Transaction) domain.FinanceSummary {
	summary := emptySummary()
	for _, txn := range transactions {
		accrue(&summary, txn)
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary
}

// MonthlySeries produces one report per calendar month 1..12 of the given
// year, in ascending month order. Empty months yield zero totals; the fixed
// length and ordering are a contract consumed by chart rendering.
func MonthlySeries(transactions []domain.Transaction, year int) []domain.MonthlyFinanceReport {
	reports := make([]domain.MonthlyFinanceReport, 0, 12)
	for m := time.January; m <= time.December; m++ {
		// Range is always valid here, the error can't occur.
		summary, _ := Summarize(transactions, Month(year, m))
		reports = append(reports, domain.MonthlyFinanceReport{
			Year:           year,
			Month:          int(m),
			FinanceSummary: summary,
		})
	}
	return reports
}

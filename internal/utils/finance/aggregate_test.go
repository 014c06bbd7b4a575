package finance_test

import (
	"testing"
	"time"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/apperrors"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/utils/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idr(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func txn(t domain.TransactionType, c domain.TransactionCategory, amount int64, d time.Time) domain.Transaction {
	return domain.Transaction{
		Type:     t,
		Category: c,
		Amount:   idr(amount),
		Date:     d,
	}
}

func TestSummarize_InvalidRange(t *testing.T) {
	r := finance.DateRange{Start: date(2024, time.March, 2), End: date(2024, time.March, 1)}
	_, err := finance.Summarize(nil, r)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)
}

func TestSummarize_EmptyInput(t *testing.T) {
	summary, err := finance.Summarize(nil, finance.Year(2024))
	require.NoError(t, err)

	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpense.IsZero())
	assert.True(t, summary.Balance.IsZero())

	// Every canonical category is present and zero.
	assert.Len(t, summary.IncomeByCategory, len(domain.IncomeCategories()))
	assert.Len(t, summary.ExpenseByCategory, len(domain.ExpenseCategories()))
	for cat, amount := range summary.IncomeByCategory {
		assert.True(t, amount.IsZero(), "income category %s should be zero", cat)
	}
	for cat, amount := range summary.ExpenseByCategory {
		assert.True(t, amount.IsZero(), "expense category %s should be zero", cat)
	}
}

func TestSummarizeAll_NoDateWindow(t *testing.T) {
	// Oddly dated records still count toward the all-time position.
	transactions := []domain.Transaction{
		txn(domain.Income, domain.CategoryInfaq, 75000, date(1965, time.June, 1)),
		txn(domain.Income, domain.CategoryZakat, 200000, date(2024, time.April, 10)),
		txn(domain.Expense, domain.CategoryOperasional, 50000, date(2024, time.April, 12)),
	}

	summary := finance.SummarizeAll(transactions)

	assert.True(t, summary.TotalIncome.Equal(idr(275000)))
	assert.True(t, summary.TotalExpense.Equal(idr(50000)))
	assert.True(t, summary.Balance.Equal(idr(225000)))
	assert.True(t, summary.IncomeByCategory[domain.CategoryInfaq].Equal(idr(75000)))
}

func TestSummarize_BalanceIdentity(t *testing.T) {
	transactions := []domain.Transaction{
		txn(domain.Income, domain.CategoryInfaq, 100000, date(2024, time.January, 5)),
		txn(domain.Income, domain.CategoryZakat, 250000, date(2024, time.February, 1)),
		txn(domain.Expense, domain.CategoryOperasional, 40000, date(2024, time.January, 20)),
		txn(domain.Expense, domain.CategorySosial, 75000, date(2024, time.June, 15)),
	}

	summary, err := finance.Summarize(transactions, finance.Year(2024))
	require.NoError(t, err)

	assert.True(t, summary.Balance.Equal(summary.TotalIncome.Sub(summary.TotalExpense)))
	assert.True(t, summary.TotalIncome.Equal(idr(350000)))
	assert.True(t, summary.TotalExpense.Equal(idr(115000)))

	// Totals equal the sum of their category breakdowns.
	incomeSum := decimal.Zero
	for _, amount := range summary.IncomeByCategory {
		incomeSum = incomeSum.Add(amount)
	}
	assert.True(t, incomeSum.Equal(summary.TotalIncome))

	expenseSum := decimal.Zero
	for _, amount := range summary.ExpenseByCategory {
		expenseSum = expenseSum.Add(amount)
	}
	assert.True(t, expenseSum.Equal(summary.TotalExpense))
}

func TestSummarize_BoundaryDatesIncluded(t *testing.T) {
	r := finance.DateRange{Start: date(2024, time.March, 1), End: date(2024, time.March, 31)}
	transactions := []domain.Transaction{
		txn(domain.Income, domain.CategoryInfaq, 1000, date(2024, time.March, 1)),            // on start boundary
		txn(domain.Income, domain.CategoryInfaq, 2000, date(2024, time.March, 31)),           // on end boundary
		txn(domain.Income, domain.CategoryInfaq, 4000, date(2024, time.February, 29)),        // before range
		txn(domain.Income, domain.CategoryInfaq, 8000, date(2024, time.April, 1)),            // after range
		txn(domain.Income, domain.CategoryInfaq, 16000, date(2024, time.March, 31).Add(23*time.Hour)), // time of day is irrelevant
	}

	summary, err := finance.Summarize(transactions, r)
	require.NoError(t, err)
	assert.True(t, summary.TotalIncome.Equal(idr(19000)))
}

func TestSummarize_OrderIndependent(t *testing.T) {
	forward := []domain.Transaction{
		txn(domain.Income, domain.CategoryDonasi, 11000, date(2024, time.May, 2)),
		txn(domain.Income, domain.CategoryInfaq, 22000, date(2024, time.May, 9)),
		txn(domain.Expense, domain.CategoryKegiatan, 5000, date(2024, time.May, 20)),
	}
	reversed := []domain.Transaction{forward[2], forward[1], forward[0]}

	a, err := finance.Summarize(forward, finance.Year(2024))
	require.NoError(t, err)
	b, err := finance.Summarize(reversed, finance.Year(2024))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestMonthlySeries_Example(t *testing.T) {
	transactions := []domain.Transaction{
		txn(domain.Income, domain.CategoryInfaq, 100000, date(2024, time.January, 5)),
		txn(domain.Expense, domain.CategoryOperasional, 40000, date(2024, time.January, 20)),
		txn(domain.Income, domain.CategoryZakat, 250000, date(2024, time.February, 1)),
	}

	series := finance.MonthlySeries(transactions, 2024)
	require.Len(t, series, 12)

	jan := series[0]
	assert.Equal(t, 1, jan.Month)
	assert.True(t, jan.TotalIncome.Equal(idr(100000)))
	assert.True(t, jan.TotalExpense.Equal(idr(40000)))
	assert.True(t, jan.Balance.Equal(idr(60000)))

	feb := series[1]
	assert.Equal(t, 2, feb.Month)
	assert.True(t, feb.TotalIncome.Equal(idr(250000)))
	assert.True(t, feb.TotalExpense.IsZero())
	assert.True(t, feb.Balance.Equal(idr(250000)))

	for i := 2; i < 12; i++ {
		assert.Equal(t, i+1, series[i].Month)
		assert.True(t, series[i].TotalIncome.IsZero(), "month %d income", i+1)
		assert.True(t, series[i].TotalExpense.IsZero(), "month %d expense", i+1)
	}
}

func TestMonthlySeries_ConsistentWithYearlySummary(t *testing.T) {
	transactions := []domain.Transaction{
		txn(domain.Income, domain.CategoryInfaq, 123000, date(2023, time.January, 1)),
		txn(domain.Income, domain.CategoryQurban, 500000, date(2023, time.June, 28)),
		txn(domain.Expense, domain.CategoryPembangunan, 321000, date(2023, time.June, 30)),
		txn(domain.Expense, domain.CategoryOperasional, 7000, date(2023, time.December, 31)),
		// Outside the year, must not leak into any month.
		txn(domain.Income, domain.CategoryInfaq, 999999, date(2024, time.January, 1)),
	}

	series := finance.MonthlySeries(transactions, 2023)
	monthlyTotal := decimal.Zero
	for _, report := range series {
		monthlyTotal = monthlyTotal.Add(report.Balance)
	}

	yearly, err := finance.Summarize(transactions, finance.Year(2023))
	require.NoError(t, err)
	assert.True(t, monthlyTotal.Equal(yearly.Balance),
		"sum of monthly balances %s != yearly balance %s", monthlyTotal, yearly.Balance)
}

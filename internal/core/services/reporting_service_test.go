package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/apperrors"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
	portsrepo "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/repositories"
	portssvc "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/services"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/services"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/platform/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func txnOn(date string, txnType domain.TransactionType, category domain.TransactionCategory, amount int64) domain.Transaction {
	d, _ := time.Parse("2006-01-02", date)
	return domain.Transaction{
		TransactionID: date + "-" + string(category),
		Type:          txnType,
		Category:      category,
		Amount:        decimal.NewFromInt(amount),
		Date:          d,
	}
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	registry    *cache.Registry
	service     portssvc.ReportingSvc
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.registry = cache.NewRegistry()
	suite.service = services.NewReportingService(
		suite.mockTxnRepo,
		services.WithReportingCaches(suite.registry, time.Minute),
	)
}

func (suite *ReportingServiceTestSuite) TestSummarize_InvalidRange() {
	ctx := context.Background()
	from, _ := time.Parse("2006-01-02", "2025-06-01")
	to, _ := time.Parse("2006-01-02", "2025-01-01")

	_, err := suite.service.Summarize(ctx, from, to)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidRange)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestSummarize_BalanceIdentity() {
	ctx := context.Background()
	from, _ := time.Parse("2006-01-02", "2025-01-01")
	to, _ := time.Parse("2006-01-02", "2025-12-31")
	txns := []domain.Transaction{
		txnOn("2025-01-10", domain.Income, domain.CategoryInfaq, 100000),
		txnOn("2025-02-05", domain.Income, domain.CategoryDonasi, 250000),
		txnOn("2025-01-20", domain.Expense, domain.CategoryOperasional, 40000),
	}

	suite.mockTxnRepo.On("ListTransactions", ctx, mock.AnythingOfType("repositories.TransactionFilter")).Return(txns, nil).Once()

	summary, err := suite.service.Summarize(ctx, from, to)

	suite.Require().NoError(err)
	suite.True(summary.TotalIncome.Equal(decimal.NewFromInt(350000)))
	suite.True(summary.TotalExpense.Equal(decimal.NewFromInt(40000)))
	suite.True(summary.Balance.Equal(summary.TotalIncome.Sub(summary.TotalExpense)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestSummarize_CachedUntilInvalidated() {
	ctx := context.Background()
	from, _ := time.Parse("2006-01-02", "2025-01-01")
	to, _ := time.Parse("2006-01-02", "2025-01-31")
	txns := []domain.Transaction{
		txnOn("2025-01-10", domain.Income, domain.CategoryInfaq, 100000),
	}

	// Two repo fetches total: one before invalidation, one after.
	suite.mockTxnRepo.On("ListTransactions", ctx, mock.AnythingOfType("repositories.TransactionFilter")).Return(txns, nil).Twice()

	first, err := suite.service.Summarize(ctx, from, to)
	suite.Require().NoError(err)

	// Second call is served from cache, no repo round trip.
	second, err := suite.service.Summarize(ctx, from, to)
	suite.Require().NoError(err)
	suite.True(first.TotalIncome.Equal(second.TotalIncome))

	// A finance mutation drops the tag; the next read recomputes.
	suite.registry.Invalidate(cache.ResourceFinance)
	third, err := suite.service.Summarize(ctx, from, to)
	suite.Require().NoError(err)
	suite.True(first.TotalIncome.Equal(third.TotalIncome))

	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlySeries_TwelveMonthsAscending() {
	ctx := context.Background()
	txns := []domain.Transaction{
		txnOn("2025-01-10", domain.Income, domain.CategoryInfaq, 100000),
		txnOn("2025-01-15", domain.Expense, domain.CategoryOperasional, 40000),
		txnOn("2025-02-01", domain.Income, domain.CategoryZakat, 250000),
	}

	suite.mockTxnRepo.On("ListTransactions", ctx, mock.AnythingOfType("repositories.TransactionFilter")).Return(txns, nil).Once()

	reports, err := suite.service.MonthlySeries(ctx, 2025)

	suite.Require().NoError(err)
	suite.Require().Len(reports, 12)
	for i, report := range reports {
		suite.Equal(2025, report.Year)
		suite.Equal(i+1, report.Month)
	}
	suite.True(reports[0].TotalIncome.Equal(decimal.NewFromInt(100000)))
	suite.True(reports[0].Balance.Equal(decimal.NewFromInt(60000)))
	suite.True(reports[1].TotalIncome.Equal(decimal.NewFromInt(250000)))
	suite.True(reports[1].TotalExpense.IsZero())
	for _, report := range reports[2:] {
		suite.True(report.TotalIncome.IsZero())
		suite.True(report.TotalExpense.IsZero())
	}
}

func (suite *ReportingServiceTestSuite) TestCurrentBalance_EmptyStore() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListTransactions", ctx, mock.MatchedBy(func(filter portsrepo.TransactionFilter) bool {
		return filter.DateFrom == nil && filter.DateTo == nil && filter.Limit == -1
	})).Return([]domain.Transaction{}, nil).Once()

	summary, err := suite.service.CurrentBalance(ctx)

	suite.Require().NoError(err)
	suite.True(summary.TotalIncome.IsZero())
	suite.True(summary.TotalExpense.IsZero())
	suite.True(summary.Balance.IsZero())
	// Zero-filled category maps, every canonical category present.
	suite.Len(summary.IncomeByCategory, len(domain.IncomeCategories()))
	suite.Len(summary.ExpenseByCategory, len(domain.ExpenseCategories()))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

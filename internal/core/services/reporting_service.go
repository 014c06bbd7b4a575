package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/apperrors"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
	portsrepo "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/repositories"
	portssvc "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/services"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/platform/cache"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/utils/finance"
)

// reportingService implements the ReportingSvc interface. Summaries are
// derived views computed by the pure aggregator over transactions fetched
// from the store, cached until a mutation invalidates the "finance" tag.
type reportingService struct {
	BaseService
	txnRepo   portsrepo.TransactionReader
	summaries *cache.TagCache[domain.FinanceSummary]
	series    *cache.TagCache[[]domain.MonthlyFinanceReport]
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingCaches wires summary caches into the reporting service and
// registers them for tag invalidation.
func WithReportingCaches(registry *cache.Registry, ttl time.Duration) ReportingServiceOption {
	return func(s *reportingService) {
		s.summaries = cache.NewTagCache[domain.FinanceSummary](ttl)
		s.series = cache.NewTagCache[[]domain.MonthlyFinanceReport](ttl)
		registry.Register(s.summaries)
		registry.Register(s.series)
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.TransactionReader, options ...ReportingServiceOption) portssvc.ReportingSvc {
	svc := &reportingService{
		txnRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportingService implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// fetch loads every transaction within the window from the store. The window
// may be open-ended for the all-time balance.
func (s *reportingService) fetch(ctx context.Context, from, to *time.Time) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, portsrepo.TransactionFilter{
		DateFrom: from,
		DateTo:   to,
		Limit:    -1, // no pagination; aggregation needs the full set
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for aggregation: %w", err)
	}
	return txns, nil
}

func (s *reportingService) Summarize(ctx context.Context, from, to time.Time) (domain.FinanceSummary, error) {
	if from.After(to) {
		return domain.FinanceSummary{}, apperrors.ErrInvalidRange
	}

	key := fmt.Sprintf("summary:%s:%s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	if s.summaries != nil {
		if cached, ok := s.summaries.Get(key); ok {
			return cached, nil
		}
	}

	txns, err := s.fetch(ctx, &from, &to)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute finance summary")
		return domain.FinanceSummary{}, err
	}

	summary, err := finance.Summarize(txns, finance.DateRange{Start: from, End: to})
	if err != nil {
		return domain.FinanceSummary{}, err
	}

	if s.summaries != nil {
		s.summaries.Set(key, summary, cache.ResourceFinance)
	}
	s.LogInfo(ctx, "Finance summary computed",
		slog.String("from", from.Format("2006-01-02")),
		slog.String("to", to.Format("2006-01-02")),
		slog.Int("transaction_count", len(txns)))
	return summary, nil
}

func (s *reportingService) MonthlySeries(ctx context.Context, year int) ([]domain.MonthlyFinanceReport, error) {
	key := fmt.Sprintf("series:%d", year)
	if s.series != nil {
		if cached, ok := s.series.Get(key); ok {
			return cached, nil
		}
	}

	yearRange := finance.Year(year)
	txns, err := s.fetch(ctx, &yearRange.Start, &yearRange.End)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute monthly series", slog.Int("year", year))
		return nil, err
	}

	reports := finance.MonthlySeries(txns, year)

	if s.series != nil {
		s.series.Set(key, reports, cache.ResourceFinance)
	}
	s.LogInfo(ctx, "Monthly series computed", slog.Int("year", year), slog.Int("transaction_count", len(txns)))
	return reports, nil
}

// CurrentBalance aggregates every recorded transaction into the all-time
// summary shown on the admin dashboard and the public transparency page.
func (s *reportingService) CurrentBalance(ctx context.Context) (domain.FinanceSummary, error) {
	const key = "balance:all"
	if s.summaries != nil {
		if cached, ok := s.summaries.Get(key); ok {
			return cached, nil
		}
	}

	txns, err := s.fetch(ctx, nil, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute current balance")
		return domain.FinanceSummary{}, err
	}

	summary := finance.SummarizeAll(txns)

	if s.summaries != nil {
		s.summaries.Set(key, summary, cache.ResourceFinance)
	}
	return summary, nil
}

package services

import (
	"context"
	"time"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
)

// ReportingSvc produces derived, read-only finance aggregations. Results are
// plain domain values; no persistence types leak through this surface.
type ReportingSvc interface {
	// Summarize aggregates all transactions within the inclusive date range.
	Summarize(ctx context.Context, from, to time.Time) (domain.FinanceSummary, error)

	// MonthlySeries produces twelve reports for the given year, months ascending.
	MonthlySeries(ctx context.Context, year int) ([]domain.MonthlyFinanceReport, error)

	// CurrentBalance aggregates over all recorded transactions.
	CurrentBalance(ctx context.Context) (domain.FinanceSummary, error)
}

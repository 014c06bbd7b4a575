package repositories

import (
	"context"
	"time"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
)

// FundReader defines read operations for fund data
type FundReader interface {
	// FindFundByID retrieves a specific fund by its unique identifier.
	FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error)

	// ListFunds retrieves all funds, active ones first, ordered by name.
	ListFunds(ctx context.Context, includeInactive bool) ([]domain.Fund, error)
}

// FundWriter defines write operations for fund data
type FundWriter interface {
	// SaveFund persists a new fund.
	SaveFund(ctx context.Context, fund domain.Fund) error

	// UpdateFund updates an existing fund's details.
	UpdateFund(ctx context.Context, fund domain.Fund) error

	// DeleteFund removes a fund, but only when no transaction references it.
	// The reference check and the delete execute as one atomic statement.
	// Returns apperrors.ErrFundInUse when transactions are attached and
	// apperrors.ErrNotFound when the fund does not exist.
	DeleteFund(ctx context.Context, fundID string) error

	// DeactivateFund marks a fund as inactive.
	DeactivateFund(ctx context.Context, fundID string, userID string, now time.Time) error
}

// FundRepositoryFacade combines all fund-related repository interfaces
type FundRepositoryFacade interface {
	FundReader
	FundWriter
}

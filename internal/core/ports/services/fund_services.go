package services

import (
	"context"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/dto"
)

// FundReaderSvc defines read operations for fund data
type FundReaderSvc interface {
	// GetFundByID retrieves a specific fund by its unique identifier.
	GetFundByID(ctx context.Context, fundID string) (*domain.Fund, error)

	// ListFunds retrieves all funds.
	ListFunds(ctx context.Context, includeInactive bool) ([]domain.Fund, error)
}

// FundWriterSvc defines write operations for fund data
type FundWriterSvc interface {
	// CreateFund persists a new fund.
	CreateFund(ctx context.Context, req dto.CreateFundRequest, userID string) (*domain.Fund, error)

	// UpdateFund updates an existing fund's details.
	UpdateFund(ctx context.Context, fundID string, req dto.UpdateFundRequest, userID string) (*domain.Fund, error)

	// DeleteFund removes a fund when no transaction references it; otherwise
	// fails with apperrors.ErrFundInUse.
	DeleteFund(ctx context.Context, fundID string, userID string) error

	// DeactivateFund marks a fund as inactive, the remedy when deletion is blocked.
	DeactivateFund(ctx context.Context, fundID string, userID string) error
}

// FundSvcFacade combines all fund-related service interfaces
type FundSvcFacade interface {
	FundReaderSvc
	FundWriterSvc
}

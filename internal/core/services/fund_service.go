package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/apperrors"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
	portsrepo "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/repositories"
	portssvc "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/services"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/dto"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/platform/cache"
	"github.com/google/uuid"
)

// fundService implements the FundSvcFacade interface
type fundService struct {
	BaseService
	fundRepo    portsrepo.FundRepositoryFacade
	txnReader   portsrepo.TransactionReader
	invalidator portssvc.CacheInvalidator
}

// FundServiceOption is a functional option for configuring the fund service
type FundServiceOption func(*fundService)

// WithFundCacheInvalidator sets the cache invalidator for the fund service.
func WithFundCacheInvalidator(invalidator portssvc.CacheInvalidator) FundServiceOption {
	return func(s *fundService) {
		s.invalidator = invalidator
	}
}

// WithFundTransactionReader wires a transaction reader so fund deletion can
// refuse referenced funds up front, before opening a delete transaction.
func WithFundTransactionReader(reader portsrepo.TransactionReader) FundServiceOption {
	return func(s *fundService) {
		s.txnReader = reader
	}
}

// NewFundService creates a new fund service with the provided options
func NewFundService(repo portsrepo.FundRepositoryFacade, options ...FundServiceOption) portssvc.FundSvcFacade {
	svc := &fundService{
		fundRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure fundService implements the FundSvcFacade interface
var _ portssvc.FundSvcFacade = (*fundService)(nil)

// invalidate drops cached fund views. Runs synchronously so the invalidation
// lands before the mutation returns success.
func (s *fundService) invalidate() {
	if s.invalidator != nil {
		s.invalidator.Invalidate(cache.ResourceFunds)
	}
}

func (s *fundService) CreateFund(ctx context.Context, req dto.CreateFundRequest, userID string) (*domain.Fund, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: fund name must not be empty", apperrors.ErrValidation)
	}
	if !domain.IsValidFundType(req.FundType) {
		return nil, fmt.Errorf("%w: unknown fund type %q", apperrors.ErrValidation, req.FundType)
	}

	now := time.Now()
	fund := domain.Fund{
		FundID:       uuid.NewString(),
		Name:         req.Name,
		FundType:     req.FundType,
		Description:  req.Description,
		IsRestricted: req.IsRestricted,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.fundRepo.SaveFund(ctx, fund); err != nil {
		s.LogError(ctx, err, "Failed to save fund", slog.String("fund_name", req.Name))
		return nil, fmt.Errorf("failed to create fund: %w", err)
	}

	s.invalidate()
	s.LogInfo(ctx, "Fund created", slog.String("fund_id", fund.FundID), slog.String("fund_name", fund.Name))
	return &fund, nil
}

func (s *fundService) GetFundByID(ctx context.Context, fundID string) (*domain.Fund, error) {
	fund, err := s.fundRepo.FindFundByID(ctx, fundID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find fund", slog.String("fund_id", fundID))
		}
		return nil, err
	}
	return fund, nil
}

func (s *fundService) ListFunds(ctx context.Context, includeInactive bool) ([]domain.Fund, error) {
	funds, err := s.fundRepo.ListFunds(ctx, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list funds")
		return nil, fmt.Errorf("failed to list funds: %w", err)
	}
	return funds, nil
}

func (s *fundService) UpdateFund(ctx context.Context, fundID string, req dto.UpdateFundRequest, userID string) (*domain.Fund, error) {
	fund, err := s.fundRepo.FindFundByID(ctx, fundID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: fund name must not be empty", apperrors.ErrValidation)
		}
		fund.Name = *req.Name
	}
	if req.FundType != nil {
		if !domain.IsValidFundType(*req.FundType) {
			return nil, fmt.Errorf("%w: unknown fund type %q", apperrors.ErrValidation, *req.FundType)
		}
		fund.FundType = *req.FundType
	}
	if req.Description != nil {
		fund.Description = *req.Description
	}
	if req.IsRestricted != nil {
		fund.IsRestricted = *req.IsRestricted
	}
	if req.IsActive != nil {
		fund.IsActive = *req.IsActive
	}
	fund.LastUpdatedAt = time.Now()
	fund.LastUpdatedBy = userID

	if err := s.fundRepo.UpdateFund(ctx, *fund); err != nil {
		s.LogError(ctx, err, "Failed to update fund", slog.String("fund_id", fundID))
		return nil, fmt.Errorf("failed to update fund %s: %w", fundID, err)
	}

	s.invalidate()
	s.LogInfo(ctx, "Fund updated", slog.String("fund_id", fundID))
	return fund, nil
}

// DeleteFund removes a fund only when no transaction references it. The check
// and the delete execute as one atomic statement in the repository, so a
// concurrent transaction insert can never leave a dangling fund reference.
// A wired transaction reader short-circuits obviously referenced funds
// without opening a delete transaction; the atomic statement stays
// authoritative either way.
func (s *fundService) DeleteFund(ctx context.Context, fundID string, userID string) error {
	if s.txnReader != nil {
		referenced, err := s.txnReader.ExistsForFund(ctx, fundID)
		if err != nil {
			s.LogError(ctx, err, "Failed to check fund references before delete", slog.String("fund_id", fundID))
			return fmt.Errorf("failed to delete fund %s: %w", fundID, err)
		}
		if referenced {
			s.LogInfo(ctx, "Fund deletion blocked by existing transactions", slog.String("fund_id", fundID))
			return apperrors.ErrFundInUse
		}
	}

	err := s.fundRepo.DeleteFund(ctx, fundID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundInUse) {
			s.LogInfo(ctx, "Fund deletion blocked by existing transactions", slog.String("fund_id", fundID))
			return err
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete fund", slog.String("fund_id", fundID))
		return fmt.Errorf("failed to delete fund %s: %w", fundID, err)
	}

	s.invalidate()
	s.LogInfo(ctx, "Fund deleted", slog.String("fund_id", fundID), slog.String("deleted_by", userID))
	return nil
}

func (s *fundService) DeactivateFund(ctx context.Context, fundID string, userID string) error {
	if err := s.fundRepo.DeactivateFund(ctx, fundID, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate fund", slog.String("fund_id", fundID))
		}
		return err
	}

	s.invalidate()
	s.LogInfo(ctx, "Fund deactivated", slog.String("fund_id", fundID))
	return nil
}

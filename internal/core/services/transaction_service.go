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
	"github.com/shopspring/decimal"
)

// systemUserID is recorded as the creator of transactions that arrive through
// the unauthenticated public donation form.
const systemUserID = "system"

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	fundRepo    portsrepo.FundReader
	invalidator portssvc.CacheInvalidator
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionCacheInvalidator sets the cache invalidator for the transaction service.
func WithTransactionCacheInvalidator(invalidator portssvc.CacheInvalidator) TransactionServiceOption {
	return func(s *transactionService) {
		s.invalidator = invalidator
	}
}

// WithFundReader adds a fund reader used to validate fund attribution.
func WithFundReader(repo portsrepo.FundReader) TransactionServiceOption {
	return func(s *transactionService) {
		s.fundRepo = repo
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) invalidate() {
	if s.invalidator != nil {
		s.invalidator.Invalidate(cache.ResourceFinance)
	}
}

func parseDate(value string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	return d, nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if !amount.Equal(amount.Truncate(0)) {
		return fmt.Errorf("%w: IDR amounts must be whole rupiah", apperrors.ErrValidation)
	}
	return nil
}

// validateFund checks that a referenced fund exists, when a fund reader is wired.
func (s *transactionService) validateFund(ctx context.Context, fundID string) error {
	if fundID == "" || s.fundRepo == nil {
		return nil
	}
	if _, err := s.fundRepo.FindFundByID(ctx, fundID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: fund %s does not exist", apperrors.ErrValidation, fundID)
		}
		return fmt.Errorf("failed to validate fund %s: %w", fundID, err)
	}
	return nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if !domain.IsValidCategory(req.Type, req.Category) {
		return nil, fmt.Errorf("%w: category %q is not valid for type %s", apperrors.ErrValidation, req.Category, req.Type)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := s.validateFund(ctx, req.FundID); err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          req.Type,
		Category:      req.Category,
		Amount:        req.Amount,
		Date:          date,
		FundID:        req.FundID,
		Description:   req.Description,
		DonorName:     req.DonorName,
		PaymentMethod: req.PaymentMethod,
		IsAnonymous:   req.IsAnonymous,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.invalidate()
	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("category", string(txn.Category)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter := portsrepo.TransactionFilter{
		FundID: params.FundID,
		Type:   domain.TransactionType(params.Type),
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if params.From != "" {
		from, err := parseDate(params.From)
		if err != nil {
			return nil, err
		}
		filter.DateFrom = &from
	}
	if params.To != "" {
		to, err := parseDate(params.To)
		if err != nil {
			return nil, err
		}
		filter.DateTo = &to
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return nil, apperrors.ErrInvalidRange
	}

	txns, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		txn.Type = *req.Type
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	// Type and category are validated together: either may change alone, but
	// the pair must stay within one partition of the category universe.
	if !domain.IsValidCategory(txn.Type, txn.Category) {
		return nil, fmt.Errorf("%w: category %q is not valid for type %s", apperrors.ErrValidation, txn.Category, txn.Type)
	}
	if req.Amount != nil {
		if err := validateAmount(*req.Amount); err != nil {
			return nil, err
		}
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		txn.Date = date
	}
	if req.FundID != nil {
		if err := s.validateFund(ctx, *req.FundID); err != nil {
			return nil, err
		}
		txn.FundID = *req.FundID
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.DonorName != nil {
		txn.DonorName = *req.DonorName
	}
	if req.PaymentMethod != nil {
		txn.PaymentMethod = *req.PaymentMethod
	}
	if req.IsAnonymous != nil {
		txn.IsAnonymous = *req.IsAnonymous
	}
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	s.invalidate()
	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}

	s.invalidate()
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID), slog.String("deleted_by", userID))
	return nil
}

// RecordPublicDonation records an income transaction from the public donation
// form, dated today.
func (s *transactionService) RecordPublicDonation(ctx context.Context, req dto.PublicDonationRequest) (*domain.Transaction, error) {
	createReq := dto.CreateTransactionRequest{
		Type:          domain.Income,
		Category:      domain.TransactionCategory(req.Category),
		Amount:        req.Amount,
		Date:          time.Now().Format("2006-01-02"),
		Description:   req.Message,
		DonorName:     req.DonorName,
		PaymentMethod: req.PaymentMethod,
		IsAnonymous:   req.IsAnonymous,
	}
	return s.CreateTransaction(ctx, createReq, systemUserID)
}

package services

import (
	"context"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its unique identifier.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the query parameters.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction records a new transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// UpdateTransaction updates an existing transaction (any field except its ID).
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error

	// RecordPublicDonation records an income transaction submitted through the
	// unauthenticated public donation form.
	RecordPublicDonation(ctx context.Context, req dto.PublicDonationRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

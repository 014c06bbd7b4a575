package repositories

import (
	"context"
	"time"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
)

// TransactionFilter narrows a transaction listing. Zero values mean "no
// constraint" for that dimension.
type TransactionFilter struct {
	FundID   string
	Type     domain.TransactionType
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Offset   int
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the filter, newest date first.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)

	// ExistsForFund reports whether any transaction references the given fund.
	ExistsForFund(ctx context.Context, fundID string) (bool, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an existing transaction (any field except its ID).
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

package dto

import (
	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for recording a transaction.
// Date uses YYYY-MM-DD; time of day has no reporting meaning.
type CreateTransactionRequest struct {
	Type          domain.TransactionType     `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Category      domain.TransactionCategory `json:"category" binding:"required"`
	Amount        decimal.Decimal            `json:"amount" binding:"required"`
	Date          string                     `json:"date" binding:"required"`
	FundID        string                     `json:"fundID"`
	Description   string                     `json:"description"`
	DonorName     string                     `json:"donorName"`
	PaymentMethod string                     `json:"paymentMethod"`
	IsAnonymous   bool                       `json:"isAnonymous"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
// Any field except the ID may change; pointers differentiate omitted fields.
type UpdateTransactionRequest struct {
	Type          *domain.TransactionType     `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Category      *domain.TransactionCategory `json:"category"`
	Amount        *decimal.Decimal            `json:"amount"`
	Date          *string                     `json:"date"`
	FundID        *string                     `json:"fundID"`
	Description   *string                     `json:"description"`
	DonorName     *string                     `json:"donorName"`
	PaymentMethod *string                     `json:"paymentMethod"`
	IsAnonymous   *bool                       `json:"isAnonymous"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	FundID string `form:"fundID"`
	Type   string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	From   string `form:"from"` // YYYY-MM-DD
	To     string `form:"to"`   // YYYY-MM-DD
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	TransactionID string                      `json:"transactionID"`
	Type          domain.TransactionType      `json:"type"`
	Category      domain.TransactionCategory  `json:"category"`
	Amount        decimal.Decimal             `json:"amount"`
	Date          string                      `json:"date"`
	FundID        string                      `json:"fundID,omitempty"`
	Description   string                      `json:"description,omitempty"`
	DonorName     string                      `json:"donorName,omitempty"`
	PaymentMethod string                      `json:"paymentMethod,omitempty"`
	IsAnonymous   bool                        `json:"isAnonymous"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
// Donor names on anonymous transactions are withheld.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	donorName := txn.DonorName
	if txn.IsAnonymous {
		donorName = ""
	}
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          txn.Type,
		Category:      txn.Category,
		Amount:        txn.Amount,
		Date:          txn.Date.Format("2006-01-02"),
		FundID:        txn.FundID,
		Description:   txn.Description,
		DonorName:     donorName,
		PaymentMethod: txn.PaymentMethod,
		IsAnonymous:   txn.IsAnonymous,
	}
}

// ToListTransactionsResponse converts a slice of domain.Transaction to its DTO.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: responses}
}

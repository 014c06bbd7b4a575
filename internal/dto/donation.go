package dto

import (
	"github.com/shopspring/decimal"
)

// PublicDonationRequest is the unauthenticated donation intake payload from
// the public site. It always records an INCOME transaction.
type PublicDonationRequest struct {
	DonorName     string          `json:"donorName" binding:"required_unless=IsAnonymous true"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Category      string          `json:"category" binding:"required,oneof=INFAQ DONASI ZAKAT WAKAF QURBAN"`
	PaymentMethod string          `json:"paymentMethod" binding:"required"`
	Message       string          `json:"message"`
	IsAnonymous   bool            `json:"isAnonymous"`
}

// PublicDonationResponse acknowledges a recorded donation.
type PublicDonationResponse struct {
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Date          string          `json:"date"`
}

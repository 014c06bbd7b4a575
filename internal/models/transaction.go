package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persistence model for a single income or expense record.
// Amount is whole rupiah; the column is NUMERIC to keep arithmetic exact.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	Type          string          `db:"type"`
	Category      string          `db:"category"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"date"`
	FundID        sql.NullString  `db:"fund_id"`
	Description   string          `db:"description"`
	DonorName     string          `db:"donor_name"`
	PaymentMethod string          `db:"payment_method"`
	IsAnonymous   bool            `db:"is_anonymous"`
	AuditFields
}

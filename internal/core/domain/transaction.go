package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// TransactionCategory classifies a transaction within its type.
// The category universe is partitioned by type: an income category is never
// valid on an expense transaction and vice versa.
type TransactionCategory string

const (
	// Income categories.
	CategoryInfaq         TransactionCategory = "INFAQ"
	CategoryDonasi        TransactionCategory = "DONASI"
	CategoryZakat         TransactionCategory = "ZAKAT"
	CategoryWakaf         TransactionCategory = "WAKAF"
	CategoryQurban        TransactionCategory = "QURBAN"
	CategoryIncomeLainnya TransactionCategory = "LAINNYA_MASUK"

	// Expense categories.
	CategoryOperasional    TransactionCategory = "OPERASIONAL"
	CategorySosial         TransactionCategory = "SOSIAL"
	CategoryPembangunan    TransactionCategory = "PEMBANGUNAN"
	CategoryKegiatan       TransactionCategory = "KEGIATAN"
	CategoryExpenseLainnya TransactionCategory = "LAINNYA_KELUAR"
)

// IncomeCategories returns the canonical income category list.
// The order is stable: chart rendering depends on it.
func IncomeCategories() []TransactionCategory {
	return []TransactionCategory{
		CategoryInfaq,
		CategoryDonasi,
		CategoryZakat,
		CategoryWakaf,
		CategoryQurban,
		CategoryIncomeLainnya,
	}
}

// ExpenseCategories returns the canonical expense category list.
// The order is stable: chart rendering depends on it.
func ExpenseCategories() []TransactionCategory {
	return []TransactionCategory{
		CategoryOperasional,
		CategorySosial,
		CategoryPembangunan,
		CategoryKegiatan,
		CategoryExpenseLainnya,
	}
}

// CategoriesFor returns the category universe for the given transaction type.
func CategoriesFor(t TransactionType) []TransactionCategory {
	switch t {
	case Income:
		return IncomeCategories()
	case Expense:
		return ExpenseCategories()
	default:
		return nil
	}
}

// IsValidCategory reports whether category belongs to the given type's universe.
func IsValidCategory(t TransactionType, category TransactionCategory) bool {
	for _, c := range CategoriesFor(t) {
		if c == category {
			return true
		}
	}
	return false
}

// Transaction is one dated, typed, categorized monetary record.
// Amounts are whole rupiah (IDR has no fractional sub-unit) and always
// non-negative; the type carries the direction.
type Transaction struct {
	TransactionID string              `json:"transactionID"` // Primary key (UUID)
	Type          TransactionType     `json:"type"`
	Category      TransactionCategory `json:"category"`
	Amount        decimal.Decimal     `json:"amount"`
	Date          time.Time           `json:"date"`   // Calendar date; time-of-day carries no reporting meaning
	FundID        string              `json:"fundID"` // Empty means the default/general fund
	Description   string              `json:"description"`
	DonorName     string              `json:"donorName"`
	PaymentMethod string              `json:"paymentMethod"`
	IsAnonymous   bool                `json:"isAnonymous"`
	AuditFields
}

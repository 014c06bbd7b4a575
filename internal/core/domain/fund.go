package domain

// FundType classifies what a fund's money is earmarked for.
type FundType string

const (
	FundOperasional FundType = "OPERASIONAL"
	FundSosial      FundType = "SOSIAL"
	FundZakat       FundType = "ZAKAT"
	FundWakaf       FundType = "WAKAF"
	FundQurban      FundType = "QURBAN"
	FundPembangunan FundType = "PEMBANGUNAN"
	FundLainnya     FundType = "LAINNYA"
)

// FundTypes lists every valid fund type.
func FundTypes() []FundType {
	return []FundType{
		FundOperasional,
		FundSosial,
		FundZakat,
		FundWakaf,
		FundQurban,
		FundPembangunan,
		FundLainnya,
	}
}

// IsValidFundType reports whether t is a known fund type.
func IsValidFundType(t FundType) bool {
	for _, ft := range FundTypes() {
		if ft == t {
			return true
		}
	}
	return false
}

// Fund is a named bucket that transactions are attributed to.
// A restricted fund's money is earmarked (zakat, qurban, ...) as opposed to
// general operational money. Funds referenced by transactions are never
// deleted, only deactivated.
type Fund struct {
	FundID       string   `json:"fundID"` // Primary key (UUID)
	Name         string   `json:"name"`
	FundType     FundType `json:"fundType"`
	Description  string   `json:"description"` // Nullable user description
	IsRestricted bool     `json:"isRestricted"`
	IsActive     bool     `json:"isActive"`
	AuditFields
}

package models

// Fund is the persistence model for a designated pool of money.
type Fund struct {
	FundID       string `db:"fund_id"`
	Name         string `db:"name"`
	FundType     string `db:"fund_type"`
	Description  string `db:"description"`
	IsRestricted bool   `db:"is_restricted"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}

package dto

import (
	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
)

// CreateFundRequest defines the payload for creating a fund.
type CreateFundRequest struct {
	Name         string          `json:"name" binding:"required"`
	FundType     domain.FundType `json:"fundType" binding:"required"`
	Description  string          `json:"description"`
	IsRestricted bool            `json:"isRestricted"`
}

// UpdateFundRequest defines the data allowed for updating a fund.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateFundRequest struct {
	Name         *string          `json:"name"`
	FundType     *domain.FundType `json:"fundType"`
	Description  *string          `json:"description"`
	IsRestricted *bool            `json:"isRestricted"`
	IsActive     *bool            `json:"isActive"`
}

// ListFundsParams defines query parameters for listing funds.
type ListFundsParams struct {
	IncludeInactive bool `form:"includeInactive,default=false"`
}

// FundResponse represents a fund in API responses.
type FundResponse struct {
	FundID       string          `json:"fundID"`
	Name         string          `json:"name"`
	FundType     domain.FundType `json:"fundType"`
	Description  string          `json:"description"`
	IsRestricted bool            `json:"isRestricted"`
	IsActive     bool            `json:"isActive"`
	CreatedAt    string          `json:"createdAt"`
}

// ListFundsResponse wraps the list of funds.
type ListFundsResponse struct {
	Funds []FundResponse `json:"funds"`
}

// ToFundResponse converts a domain.Fund to its response DTO.
func ToFundResponse(fund *domain.Fund) FundResponse {
	return FundResponse{
		FundID:       fund.FundID,
		Name:         fund.Name,
		FundType:     fund.FundType,
		Description:  fund.Description,
		IsRestricted: fund.IsRestricted,
		IsActive:     fund.IsActive,
		CreatedAt:    fund.CreatedAt.Format("2006-01-02"),
	}
}

// ToListFundsResponse converts a slice of domain.Fund to ListFundsResponse.
func ToListFundsResponse(funds []domain.Fund) ListFundsResponse {
	responses := make([]FundResponse, len(funds))
	for i := range funds {
		responses[i] = ToFundResponse(&funds[i])
	}
	return ListFundsResponse{Funds: responses}
}

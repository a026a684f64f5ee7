package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// CreateTrustRequest defines the data needed to constitute a new trust.
type CreateTrustRequest struct {
	Name              string          `json:"name" binding:"required"`
	CurrencyCode      string          `json:"currencyCode" binding:"required,currency_code"`
	InitialCapital    decimal.Decimal `json:"initialCapital" binding:"required"`
	BondLimitPercent  decimal.Decimal `json:"bondLimitPercent" binding:"required"`
	OtherLimitPercent decimal.Decimal `json:"otherLimitPercent" binding:"required"`
	RequiresConsensus bool            `json:"requiresConsensus"`
	CommitteeSize     int             `json:"committeeSize" binding:"omitempty,min=1"`
	ConstitutionDate  time.Time       `json:"constitutionDate" binding:"required"`
	TermType          domain.TermType `json:"termType" binding:"omitempty,oneof=STANDARD FOREIGN DISABILITY"`
	MaxTermYears      int             `json:"maxTermYears" binding:"omitempty,min=1"` // Optional, defaults by term type
}

// UpdateTrustLimitsRequest changes the category limits of a trust.
type UpdateTrustLimitsRequest struct {
	BondLimitPercent  decimal.Decimal `json:"bondLimitPercent" binding:"required"`
	OtherLimitPercent decimal.Decimal `json:"otherLimitPercent" binding:"required"`
}

// TrustResponse defines the data returned for a trust.
// Mirrors domain.Trust.
type TrustResponse struct {
	TrustID           string             `json:"trustID"`
	Name              string             `json:"name"`
	CurrencyCode      string             `json:"currencyCode"`
	InitialCapital    decimal.Decimal    `json:"initialCapital"`
	BondLimitPercent  decimal.Decimal    `json:"bondLimitPercent"`
	OtherLimitPercent decimal.Decimal    `json:"otherLimitPercent"`
	RequiresConsensus bool               `json:"requiresConsensus"`
	CommitteeSize     int                `json:"committeeSize"`
	ConstitutionDate  time.Time          `json:"constitutionDate"`
	MaxTermYears      int                `json:"maxTermYears"`
	TermType          domain.TermType    `json:"termType"`
	Status            domain.TrustStatus `json:"status"`
	IsActive          bool               `json:"isActive"`
	CreatedAt         time.Time          `json:"createdAt"`
	CreatedBy         string             `json:"createdBy"`
	LastUpdatedAt     time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy     string             `json:"lastUpdatedBy"`
}

// ToTrustResponse converts a domain.Trust to TrustResponse DTO
func ToTrustResponse(t *domain.Trust) TrustResponse {
	return TrustResponse{
		TrustID:           t.TrustID,
		Name:              t.Name,
		CurrencyCode:      t.CurrencyCode,
		InitialCapital:    t.InitialCapital,
		BondLimitPercent:  t.BondLimitPercent,
		OtherLimitPercent: t.OtherLimitPercent,
		RequiresConsensus: t.RequiresConsensus,
		CommitteeSize:     t.CommitteeSize,
		ConstitutionDate:  t.ConstitutionDate,
		MaxTermYears:      t.EffectiveMaxTermYears(),
		TermType:          t.TermType,
		Status:            t.Status,
		IsActive:          t.IsActive,
		CreatedAt:         t.CreatedAt,
		CreatedBy:         t.CreatedBy,
		LastUpdatedAt:     t.LastUpdatedAt,
		LastUpdatedBy:     t.LastUpdatedBy,
	}
}

// ListTrustsParams defines query parameters for listing trusts.
type ListTrustsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListTrustsResponse wraps the list of trusts.
type ListTrustsResponse struct {
	Trusts []TrustResponse `json:"trusts"`
}

// ToListTrustsResponse converts a slice of domain.Trust to ListTrustsResponse DTO
func ToListTrustsResponse(trusts []domain.Trust) ListTrustsResponse {
	res := make([]TrustResponse, len(trusts))
	for i, t := range trusts {
		res[i] = ToTrustResponse(&t)
	}
	return ListTrustsResponse{Trusts: res}
}

// NextQuarterlyResponse reports when the next quarterly session is due.
type NextQuarterlyResponse struct {
	TrustID string    `json:"trustID"`
	DueDate time.Time `json:"dueDate"`
}

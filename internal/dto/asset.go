package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// RegisterAssetRequest defines the data needed to register a new asset.
type RegisterAssetRequest struct {
	Category      domain.AssetCategory `json:"category" binding:"required,oneof=BOND OTHER"`
	Value         decimal.Decimal      `json:"value" binding:"required"`
	Description   string               `json:"description" binding:"required"`
	BeneficiaryID string               `json:"beneficiaryID"`
}

// AssetResponse defines the data returned for an asset.
// Mirrors domain.Asset.
type AssetResponse struct {
	AssetID          string                  `json:"assetID"`
	TrustID          string                  `json:"trustID"`
	Category         domain.AssetCategory    `json:"category"`
	Value            decimal.Decimal         `json:"value"`
	Description      string                  `json:"description"`
	ComplianceStatus domain.ComplianceStatus `json:"complianceStatus"`
	BeneficiaryID    string                  `json:"beneficiaryID,omitempty"`
	VoteRound        int                     `json:"voteRound"`
	ResolutionReason string                  `json:"resolutionReason,omitempty"`
	ResolvedBy       string                  `json:"resolvedBy,omitempty"`
	ResolvedAt       *time.Time              `json:"resolvedAt,omitempty"`
	RegisteredAt     time.Time               `json:"registeredAt"`
	CreatedBy        string                  `json:"createdBy"`
	LastUpdatedAt    time.Time               `json:"lastUpdatedAt"`
	LastUpdatedBy    string                  `json:"lastUpdatedBy"`
}

// ToAssetResponse converts a domain.Asset to AssetResponse DTO
func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		AssetID:          a.AssetID,
		TrustID:          a.TrustID,
		Category:         a.Category,
		Value:            a.Value,
		Description:      a.Description,
		ComplianceStatus: a.ComplianceStatus,
		BeneficiaryID:    a.BeneficiaryID,
		VoteRound:        a.VoteRound,
		ResolutionReason: a.ResolutionReason,
		ResolvedBy:       a.ResolvedBy,
		ResolvedAt:       a.ResolvedAt,
		RegisteredAt:     a.RegisteredAt,
		CreatedBy:        a.CreatedBy,
		LastUpdatedAt:    a.LastUpdatedAt,
		LastUpdatedBy:    a.LastUpdatedBy,
	}
}

// ListAssetsParams defines query parameters for listing assets.
type ListAssetsParams struct {
	Status *domain.ComplianceStatus `form:"status" binding:"omitempty,oneof=COMPLIANT NON_COMPLIANT PENDING_REVIEW EXCEPTION_APPROVED"`
	Limit  int                      `form:"limit,default=20"`
	Offset int                      `form:"offset,default=0"`
}

// ListAssetsResponse wraps the list of assets.
type ListAssetsResponse struct {
	Assets []AssetResponse `json:"assets"`
}

// ToListAssetsResponse converts a slice of domain.Asset to ListAssetsResponse DTO
func ToListAssetsResponse(assets []domain.Asset) ListAssetsResponse {
	res := make([]AssetResponse, len(assets))
	for i, a := range assets {
		res[i] = ToAssetResponse(&a)
	}
	return ListAssetsResponse{Assets: res}
}

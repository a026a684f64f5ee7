package services

import (
	"context"

	"github.com/trustops/trust_governance_app/internal/core/domain"
	"github.com/trustops/trust_governance_app/internal/dto"
)

// AssetReaderSvc defines read operations for asset data
type AssetReaderSvc interface {
	// GetAssetByID retrieves a specific asset of a trust.
	GetAssetByID(ctx context.Context, trustID string, assetID string) (*domain.Asset, error)

	// ListAssets retrieves a paginated list of assets for a given trust,
	// optionally filtered by compliance status.
	ListAssets(ctx context.Context, trustID string, status *domain.ComplianceStatus, limit int, offset int) ([]domain.Asset, error)
}

// AssetWriterSvc defines write operations for asset data
type AssetWriterSvc interface {
	// RegisterAsset persists a new asset, classifying it against the trust's
	// category limit. Registration never rejects an asset outright; an asset
	// that would breach the limit enters PENDING_REVIEW.
	RegisterAsset(ctx context.Context, trustID string, req dto.RegisterAssetRequest, userID string) (*domain.Asset, error)
}

// AssetSvcFacade combines all asset-related service interfaces
// This is a facade for clients that need access to all operations
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}

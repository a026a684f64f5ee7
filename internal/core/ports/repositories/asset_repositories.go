package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// AssetReader defines read operations for asset data
type AssetReader interface {
	// FindAssetByID retrieves a specific asset by its unique identifier.
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// FindAssetsByTrust retrieves every asset registered under a trust.
	// Summaries and limit checks need the full set, not a page.
	FindAssetsByTrust(ctx context.Context, trustID string) ([]domain.Asset, error)

	// ListAssets retrieves a paginated list of assets for a given trust,
	// optionally filtered by compliance status.
	ListAssets(ctx context.Context, trustID string, status *domain.ComplianceStatus, limit int, offset int) ([]domain.Asset, error)
}

// AssetWriter defines write operations for asset data
type AssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.Asset) error

	// ResolveAsset moves an asset under review to a terminal compliance
	// status. The update is conditional on the asset still being in
	// PENDING_REVIEW; a closed round surfaces as apperrors.ErrRoundClosed.
	ResolveAsset(ctx context.Context, assetID string, status domain.ComplianceStatus, reason string, resolvedBy string, now time.Time) error

	// ReopenAsset moves a rejected asset back into PENDING_REVIEW and bumps
	// its vote round. Conditional on the asset being NON_COMPLIANT.
	ReopenAsset(ctx context.Context, assetID string, userID string, now time.Time) error
}

// AssetTransactionSupport defines operations that run inside a caller-owned transaction
type AssetTransactionSupport interface {
	// FindAssetForUpdate selects an asset and locks its row for update within a transaction.
	FindAssetForUpdate(ctx context.Context, tx pgx.Tx, assetID string) (*domain.Asset, error)

	// ResolveAssetInTx applies the same conditional resolution as ResolveAsset
	// within a given transaction.
	ResolveAssetInTx(ctx context.Context, tx pgx.Tx, assetID string, status domain.ComplianceStatus, reason string, resolvedBy string, now time.Time) error
}

// AssetRepositoryFacade combines all asset-related repository interfaces
// This is a facade for clients that need access to all operations
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
	AssetTransactionSupport
}

// AssetRepositoryWithTx extends AssetRepositoryFacade with transaction capabilities
type AssetRepositoryWithTx interface {
	AssetRepositoryFacade
	TransactionManager
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trustops/trust_governance_app/internal/apperrors"
	"github.com/trustops/trust_governance_app/internal/core/domain"
	portsrepo "github.com/trustops/trust_governance_app/internal/core/ports/repositories"
	"github.com/trustops/trust_governance_app/internal/models"
	"github.com/trustops/trust_governance_app/internal/utils/mapping"
)

const assetColumns = `asset_id, trust_id, category, value, description, compliance_status, beneficiary_id, vote_round, resolution_reason, resolved_by, resolved_at, registered_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for asset data.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAssetRepository implements portsrepo.AssetRepositoryFacade
var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

func scanAsset(row pgx.Row) (models.Asset, error) {
	var m models.Asset
	err := row.Scan(
		&m.AssetID,
		&m.TrustID,
		&m.Category,
		&m.Value,
		&m.Description,
		&m.ComplianceStatus,
		&m.BeneficiaryID,
		&m.VoteRound,
		&m.ResolutionReason,
		&m.ResolvedBy,
		&m.ResolvedAt,
		&m.RegisteredAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAsset inserts a new asset.
func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)

	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AssetID,
		m.TrustID,
		m.Category,
		m.Value,
		m.Description,
		m.ComplianceStatus,
		m.BeneficiaryID,
		m.VoteRound,
		m.ResolutionReason,
		m.ResolvedBy,
		m.ResolvedAt,
		m.RegisteredAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: asset with ID %s already exists", apperrors.ErrDuplicate, m.AssetID)
		}
		return fmt.Errorf("failed to save asset %s: %w", m.AssetID, err)
	}
	return nil
}

// FindAssetByID retrieves an asset by its ID.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1;`

	m, err := scanAsset(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset by ID %s: %w", assetID, err)
	}

	d := mapping.ToDomainAsset(m)
	return &d, nil
}

// FindAssetsByTrust retrieves every asset registered under a trust.
func (r *PgxAssetRepository) FindAssetsByTrust(ctx context.Context, trustID string) ([]domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE trust_id = $1 ORDER BY registered_at;`

	rows, err := r.Pool.Query(ctx, query, trustID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets for trust %s: %w", trustID, err)
	}
	defer rows.Close()

	return collectAssets(rows)
}

// ListAssets retrieves a paginated list of assets for a trust, optionally
// filtered by compliance status.
func (r *PgxAssetRepository) ListAssets(ctx context.Context, trustID string, status *domain.ComplianceStatus, limit int, offset int) ([]domain.Asset, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE trust_id = $1 AND ($2::text IS NULL OR compliance_status = $2)
		ORDER BY registered_at DESC, asset_id DESC
		LIMIT $3 OFFSET $4;
	`
	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	rows, err := r.Pool.Query(ctx, query, trustID, statusArg, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets for trust %s: %w", trustID, err)
	}
	defer rows.Close()

	return collectAssets(rows)
}

// ResolveAsset closes a review conditionally on the asset still being in
// PENDING_REVIEW.
func (r *PgxAssetRepository) ResolveAsset(ctx context.Context, assetID string, status domain.ComplianceStatus, reason string, resolvedBy string, now time.Time) error {
	return r.resolveAsset(ctx, r.Pool, assetID, status, reason, resolvedBy, now)
}

// ResolveAssetInTx closes a review within a caller-owned transaction.
func (r *PgxAssetRepository) ResolveAssetInTx(ctx context.Context, tx pgx.Tx, assetID string, status domain.ComplianceStatus, reason string, resolvedBy string, now time.Time) error {
	return r.resolveAsset(ctx, tx, assetID, status, reason, resolvedBy, now)
}

// execer covers both pool and transaction so resolution runs in either.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *PgxAssetRepository) resolveAsset(ctx context.Context, db execer, assetID string, status domain.ComplianceStatus, reason string, resolvedBy string, now time.Time) error {
	query := `
		UPDATE assets
		SET compliance_status = $2, resolution_reason = $3, resolved_by = $4, resolved_at = $5,
		    last_updated_at = $5, last_updated_by = $4
		WHERE asset_id = $1 AND compliance_status = 'PENDING_REVIEW';
	`
	tag, err := db.Exec(ctx, query, assetID, string(status), reason, resolvedBy, now)
	if err != nil {
		return fmt.Errorf("failed to resolve asset %s: %w", assetID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyResolveConflict(ctx, db, assetID)
	}
	return nil
}

// classifyResolveConflict explains a zero-row conditional update: the asset is
// missing, already resolved, or was never under review.
func (r *PgxAssetRepository) classifyResolveConflict(ctx context.Context, db execer, assetID string) error {
	var current string
	err := db.QueryRow(ctx, `SELECT compliance_status FROM assets WHERE asset_id = $1;`, assetID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to inspect asset %s after conflict: %w", assetID, err)
	}
	if domain.ComplianceStatus(current).Terminal() {
		return fmt.Errorf("%w: asset %s already resolved to %s", apperrors.ErrRoundClosed, assetID, current)
	}
	return fmt.Errorf("%w: asset %s is %s, not under review", apperrors.ErrInvalidState, assetID, current)
}

// ReopenAsset puts a rejected asset back under review in a fresh round.
func (r *PgxAssetRepository) ReopenAsset(ctx context.Context, assetID string, userID string, now time.Time) error {
	query := `
		UPDATE assets
		SET compliance_status = 'PENDING_REVIEW', vote_round = vote_round + 1,
		    resolution_reason = NULL, resolved_by = NULL, resolved_at = NULL,
		    last_updated_at = $2, last_updated_by = $3
		WHERE asset_id = $1 AND compliance_status = 'NON_COMPLIANT';
	`
	tag, err := r.Pool.Exec(ctx, query, assetID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to reopen asset %s: %w", assetID, err)
	}
	if tag.RowsAffected() == 0 {
		var current string
		err := r.Pool.QueryRow(ctx, `SELECT compliance_status FROM assets WHERE asset_id = $1;`, assetID).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to inspect asset %s after conflict: %w", assetID, err)
		}
		return fmt.Errorf("%w: only NON_COMPLIANT assets can be reopened, asset %s is %s", apperrors.ErrInvalidState, assetID, current)
	}
	return nil
}

// FindAssetForUpdate selects an asset and locks its row within a transaction.
func (r *PgxAssetRepository) FindAssetForUpdate(ctx context.Context, tx pgx.Tx, assetID string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1 FOR UPDATE;`

	m, err := scanAsset(tx.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock asset %s: %w", assetID, err)
	}

	d := mapping.ToDomainAsset(m)
	return &d, nil
}

func collectAssets(rows pgx.Rows) ([]domain.Asset, error) {
	assets := []models.Asset{}
	for rows.Next() {
		m, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset rows: %w", err)
	}
	return mapping.ToDomainAssetSlice(assets), nil
}

package repositories

import (
	"context"
	"time"

	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// TrustReader defines read operations for trust data
type TrustReader interface {
	// FindTrustByID retrieves a specific trust by its unique identifier.
	FindTrustByID(ctx context.Context, trustID string) (*domain.Trust, error)

	// ListTrusts retrieves a paginated list of trusts.
	ListTrusts(ctx context.Context, limit int, offset int) ([]domain.Trust, error)

	// CountTrustsConstitutedInYear counts trusts whose constitution date falls
	// in the given calendar year. Used to assign correlative trust IDs.
	CountTrustsConstitutedInYear(ctx context.Context, year int) (int, error)
}

// TrustWriter defines write operations for trust data
type TrustWriter interface {
	// SaveTrust persists a new trust.
	SaveTrust(ctx context.Context, trust domain.Trust) error

	// UpdateTrust updates an existing trust's details.
	UpdateTrust(ctx context.Context, trust domain.Trust) error

	// UpdateTrustStatus transitions a trust between lifecycle statuses.
	UpdateTrustStatus(ctx context.Context, trustID string, status domain.TrustStatus, userID string, now time.Time) error
}

// TrustRepositoryFacade combines all trust-related repository interfaces
// This is a facade for clients that need access to all operations
type TrustRepositoryFacade interface {
	TrustReader
	TrustWriter
}

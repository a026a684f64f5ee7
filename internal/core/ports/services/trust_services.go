package services

import (
	"context"
	"time"

	"github.com/trustops/trust_governance_app/internal/core/domain"
	"github.com/trustops/trust_governance_app/internal/dto"
	"github.com/trustops/trust_governance_app/internal/utils/compliance"
	"github.com/trustops/trust_governance_app/internal/utils/timeline"
)

// TrustReaderSvc defines read operations for trust data
type TrustReaderSvc interface {
	// GetTrustByID retrieves a specific trust by its unique identifier.
	GetTrustByID(ctx context.Context, trustID string) (*domain.Trust, error)

	// ListTrusts retrieves a paginated list of trusts.
	ListTrusts(ctx context.Context, limit int, offset int) ([]domain.Trust, error)

	// GetTrustSummary evaluates the trust's asset allocation against its
	// category limits.
	GetTrustSummary(ctx context.Context, trustID string) (*compliance.TrustSummary, error)

	// GetTrustTimeline computes the trust's position in its maximum term.
	GetTrustTimeline(ctx context.Context, trustID string) (*timeline.Timeline, error)

	// GetNextQuarterlyDate returns the start of the next quarter window that
	// has no quarterly session scheduled.
	GetNextQuarterlyDate(ctx context.Context, trustID string) (time.Time, error)

	// GetComplianceAnalytics aggregates per-status asset counts, exception
	// history and limit posture for dashboards.
	GetComplianceAnalytics(ctx context.Context, trustID string) (*dto.ComplianceAnalyticsResponse, error)
}

// TrustWriterSvc defines write operations for trust data
type TrustWriterSvc interface {
	// CreateTrust persists a new trust with a correlative identifier.
	CreateTrust(ctx context.Context, req dto.CreateTrustRequest, creatorID string) (*domain.Trust, error)

	// UpdateTrustLimits changes the category limits of a trust. The limits
	// must not sum above 100 percent.
	UpdateTrustLimits(ctx context.Context, trustID string, req dto.UpdateTrustLimitsRequest, userID string) (*domain.Trust, error)

	// ActivateTrust moves a draft trust to ACTIVE.
	ActivateTrust(ctx context.Context, trustID string, userID string) error

	// CloseTrust moves a trust to CLOSED.
	CloseTrust(ctx context.Context, trustID string, userID string) error
}

// TrustSvcFacade combines all trust-related service interfaces
// This is a facade for clients that need access to all operations
type TrustSvcFacade interface {
	TrustReaderSvc
	TrustWriterSvc
}

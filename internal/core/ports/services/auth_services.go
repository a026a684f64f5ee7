package services

import (
	"context"
	"time"

	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed JWT for the actor and returns it
	// with its expiry time.
	GenerateAccessToken(ctx context.Context, actor *domain.Actor) (string, time.Time, error)
}

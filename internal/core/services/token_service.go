package services

import (
	"context"
	"time"

	"github.com/trustops/trust_governance_app/internal/core/domain"
	portssvc "github.com/trustops/trust_governance_app/internal/core/ports/services"
	"github.com/trustops/trust_governance_app/internal/platform/config"
	"github.com/trustops/trust_governance_app/internal/utils"
)

// tokenService implements TokenSvcFacade. It only needs the configuration
// for the signing secret, expiry and issuer.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// Ensure tokenService implements portssvc.TokenSvcFacade
var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given actor.
func (s *tokenService) GenerateAccessToken(ctx context.Context, actor *domain.Actor) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(actor.ActorID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

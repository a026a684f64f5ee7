package services

import (
	portsrepo "github.com/trustops/trust_governance_app/internal/core/ports/repositories"
	portssvc "github.com/trustops/trust_governance_app/internal/core/ports/services"
	"github.com/trustops/trust_governance_app/internal/platform/config"
)

// NewContainer creates the service container with properly initialized
// dependencies.
func NewContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Actor service comes first: every trust-scoped service uses it as the
	// membership authorizer.
	container.Actor = NewActorServiceImpl(repos.ActorRepo)
	authorizer := container.Actor.(portssvc.ActorAuthSvc)

	// Alert service next, before the services that fan alerts out through it.
	container.Alert = NewAlertServiceImpl(repos.AlertRepo, repos.ActorRepo)

	container.Trust = NewTrustServiceImpl(
		repos.TrustRepo,
		WithAssetReaderForTrust(repos.AssetRepo),
		WithSessionReaderForTrust(repos.SessionRepo),
		WithTrustAuthorizer(authorizer),
	)

	container.Asset = NewAssetServiceImpl(
		repos.AssetRepo,
		WithTrustReaderForAsset(repos.TrustRepo),
		WithAlertServiceForAsset(container.Alert),
		WithAssetAuthorizer(authorizer),
	)

	container.Exception = NewExceptionServiceImpl(
		repos.AssetRepo,
		repos.VoteRepo,
		repos.TrustRepo,
		WithAlertServiceForException(container.Alert),
		WithExceptionAuthorizer(authorizer),
	)

	container.Session = NewSessionServiceImpl(
		repos.SessionRepo,
		WithTrustReaderForSession(repos.TrustRepo),
		WithSessionAuthorizer(authorizer),
	)

	container.Statement = NewStatementServiceImpl(
		repos.StatementRepo,
		WithTrustReaderForStatement(repos.TrustRepo),
		WithStatementAuthorizer(authorizer),
	)

	container.Token = NewTokenService(cfg)

	return container
}

package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/trustops/trust_governance_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	trustRepo := newPgxTrustRepository(dbPool)
	assetRepo := newPgxAssetRepository(dbPool)
	voteRepo := newPgxVoteRepository(dbPool, assetRepo)
	sessionRepo := newPgxSessionRepository(dbPool)
	statementRepo := newPgxStatementRepository(dbPool)
	actorRepo := newPgxActorRepository(dbPool)
	alertRepo := newPgxAlertRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TrustRepo:     trustRepo,
		AssetRepo:     assetRepo,
		VoteRepo:      voteRepo,
		SessionRepo:   sessionRepo,
		StatementRepo: statementRepo,
		ActorRepo:     actorRepo,
		AlertRepo:     alertRepo,
	}
}

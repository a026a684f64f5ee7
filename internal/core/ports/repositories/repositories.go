package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TrustRepo     TrustRepositoryFacade
	AssetRepo     AssetRepositoryFacade
	VoteRepo      VoteRepositoryFacade
	SessionRepo   SessionRepositoryFacade
	StatementRepo StatementRepositoryFacade
	ActorRepo     ActorRepositoryFacade
	AlertRepo     AlertRepositoryFacade
}

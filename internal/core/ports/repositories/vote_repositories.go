package repositories

import (
	"context"

	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// VoteReader defines read operations for exception vote data
type VoteReader interface {
	// FindVotesByAssetRound retrieves the vote log for one asset and round,
	// ordered by cast time.
	FindVotesByAssetRound(ctx context.Context, assetID string, round int) ([]domain.ExceptionVote, error)

	// FindVotesByAsset retrieves the full vote history of an asset across rounds.
	FindVotesByAsset(ctx context.Context, assetID string) ([]domain.ExceptionVote, error)
}

// VoteWriter defines write operations for exception vote data
type VoteWriter interface {
	// RecordVote appends a vote and, when it produces a majority, resolves the
	// asset, all within a single transaction that locks the asset row. It
	// returns the tally after the vote. Duplicate voters surface as
	// apperrors.ErrDuplicateVote and an already resolved asset as
	// apperrors.ErrRoundClosed.
	RecordVote(ctx context.Context, vote domain.ExceptionVote, committeeSize int) (domain.VoteTally, error)
}

// VoteRepositoryFacade combines all vote-related repository interfaces
// This is a facade for clients that need access to all operations
type VoteRepositoryFacade interface {
	VoteReader
	VoteWriter
}

// VoteRepositoryWithTx extends VoteRepositoryFacade with transaction capabilities
type VoteRepositoryWithTx interface {
	VoteRepositoryFacade
	TransactionManager
}

package services

import (
	"context"

	"github.com/trustops/trust_governance_app/internal/core/domain"
	"github.com/trustops/trust_governance_app/internal/dto"
)

// ExceptionReaderSvc defines read operations for the exception workflow
type ExceptionReaderSvc interface {
	// GetVoteStatus reports the current round's tally and vote log for an
	// asset under (or past) review.
	GetVoteStatus(ctx context.Context, trustID string, assetID string) (*dto.VoteStatusResponse, error)
}

// ExceptionWriterSvc defines state-changing operations of the exception workflow
type ExceptionWriterSvc interface {
	// CastVote records a committee member's vote on an asset in a trust that
	// requires consensus, resolving the asset once a majority is reached.
	CastVote(ctx context.Context, trustID string, assetID string, req dto.CastVoteRequest, voterID string) (*dto.VoteStatusResponse, error)

	// ResolveDirect approves or rejects an exception in a trust that does not
	// require consensus.
	ResolveDirect(ctx context.Context, trustID string, assetID string, req dto.ResolveExceptionRequest, userID string) (*domain.Asset, error)

	// ReopenRound puts a rejected asset back under review in a fresh round.
	ReopenRound(ctx context.Context, trustID string, assetID string, userID string) (*domain.Asset, error)
}

// ExceptionSvcFacade combines all exception-workflow service interfaces
// This is a facade for clients that need access to all operations
type ExceptionSvcFacade interface {
	ExceptionReaderSvc
	ExceptionWriterSvc
}

package mapping

import (
	"github.com/trustops/trust_governance_app/internal/core/domain"
	"github.com/trustops/trust_governance_app/internal/models"
)

// ToModelExceptionVote converts a domain ExceptionVote to a model ExceptionVote
func ToModelExceptionVote(d domain.ExceptionVote) models.ExceptionVote {
	return models.ExceptionVote{
		VoteID:  d.VoteID,
		AssetID: d.AssetID,
		TrustID: d.TrustID,
		Round:   d.Round,
		VoterID: d.VoterID,
		Vote:    string(d.Vote),
		Reason:  d.Reason,
		CastAt:  d.CastAt,
	}
}

// ToDomainExceptionVote converts a model ExceptionVote to a domain ExceptionVote
func ToDomainExceptionVote(m models.ExceptionVote) domain.ExceptionVote {
	return domain.ExceptionVote{
		VoteID:  m.VoteID,
		AssetID: m.AssetID,
		TrustID: m.TrustID,
		Round:   m.Round,
		VoterID: m.VoterID,
		Vote:    domain.VoteValue(m.Vote),
		Reason:  m.Reason,
		CastAt:  m.CastAt,
	}
}

// ToDomainExceptionVoteSlice converts a slice of model ExceptionVotes to domain ExceptionVotes
func ToDomainExceptionVoteSlice(ms []models.ExceptionVote) []domain.ExceptionVote {
	ds := make([]domain.ExceptionVote, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExceptionVote(m)
	}
	return ds
}

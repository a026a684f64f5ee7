package dto

import (
	"time"

	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// CastVoteRequest defines a committee member's vote on an exception.
type CastVoteRequest struct {
	Vote   domain.VoteValue `json:"vote" binding:"required,oneof=APPROVE REJECT"`
	Reason string           `json:"reason"`
}

// ResolveExceptionRequest defines a direct (non-consensus) resolution.
type ResolveExceptionRequest struct {
	Decision domain.VoteValue `json:"decision" binding:"required,oneof=APPROVE REJECT"`
	Reason   string           `json:"reason" binding:"required"`
}

// VoteResponse defines the data returned for one vote in the log.
type VoteResponse struct {
	VoteID  string           `json:"voteID"`
	Round   int              `json:"round"`
	VoterID string           `json:"voterID"`
	Vote    domain.VoteValue `json:"vote"`
	Reason  string           `json:"reason,omitempty"`
	CastAt  time.Time        `json:"castAt"`
}

// VoteStatusResponse reports the current round of an asset's exception
// workflow: the asset status, the derived tally and the vote log.
type VoteStatusResponse struct {
	AssetID          string                  `json:"assetID"`
	TrustID          string                  `json:"trustID"`
	ComplianceStatus domain.ComplianceStatus `json:"complianceStatus"`
	Round            int                     `json:"round"`
	ApproveVotes     int                     `json:"approveVotes"`
	RejectVotes      int                     `json:"rejectVotes"`
	PendingVotes     int                     `json:"pendingVotes"`
	Majority         int                     `json:"majority"`
	TotalMembers     int                     `json:"totalMembers"`
	Outcome          domain.VoteOutcome      `json:"outcome"`
	Votes            []VoteResponse          `json:"votes"`
}

// ToVoteResponse converts a domain.ExceptionVote to VoteResponse DTO
func ToVoteResponse(v *domain.ExceptionVote) VoteResponse {
	return VoteResponse{
		VoteID:  v.VoteID,
		Round:   v.Round,
		VoterID: v.VoterID,
		Vote:    v.Vote,
		Reason:  v.Reason,
		CastAt:  v.CastAt,
	}
}

// ToVoteStatusResponse assembles the status DTO from the asset, the tally and
// the round's vote log.
func ToVoteStatusResponse(asset *domain.Asset, tally domain.VoteTally, votes []domain.ExceptionVote) VoteStatusResponse {
	voteResponses := make([]VoteResponse, len(votes))
	for i, v := range votes {
		voteResponses[i] = ToVoteResponse(&v)
	}
	return VoteStatusResponse{
		AssetID:          asset.AssetID,
		TrustID:          asset.TrustID,
		ComplianceStatus: asset.ComplianceStatus,
		Round:            asset.VoteRound,
		ApproveVotes:     tally.ApproveVotes,
		RejectVotes:      tally.RejectVotes,
		PendingVotes:     tally.PendingVotes,
		Majority:         tally.Majority,
		TotalMembers:     tally.TotalMembers,
		Outcome:          tally.Outcome,
		Votes:            voteResponses,
	}
}

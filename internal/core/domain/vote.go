package domain

import "time"

// VoteValue is a committee member's position on an exception.
type VoteValue string

const (
	VoteApprove VoteValue = "APPROVE"
	VoteReject  VoteValue = "REJECT"
)

// ExceptionVote is one vote in an exception round. Votes are append-only;
// a new round supersedes earlier votes, it never edits them.
type ExceptionVote struct {
	VoteID  string    `json:"voteID"`
	AssetID string    `json:"assetID"`
	TrustID string    `json:"trustID"`
	Round   int       `json:"round"`
	VoterID string    `json:"voterID"`
	Vote    VoteValue `json:"vote"`
	Reason  string    `json:"reason,omitempty"`
	CastAt  time.Time `json:"castAt"`
}

// VoteOutcome is the resolution state of a vote round.
type VoteOutcome string

const (
	OutcomePending  VoteOutcome = "PENDING"
	OutcomeApproved VoteOutcome = "APPROVED"
	OutcomeRejected VoteOutcome = "REJECTED"
)

// VoteTally is a tally derived from the append-only vote log. It carries no
// state of its own so that counts can never drift from the log.
type VoteTally struct {
	ApproveVotes int
	RejectVotes  int
	PendingVotes int
	Majority     int
	TotalMembers int
	Outcome      VoteOutcome
}

// TallyVotes computes the round outcome from the vote log for one round.
// A committeeSize of zero yields a tally that never closes.
func TallyVotes(votes []ExceptionVote, committeeSize int) VoteTally {
	tally := VoteTally{
		TotalMembers: committeeSize,
		Majority:     committeeSize/2 + 1,
		Outcome:      OutcomePending,
	}
	for _, v := range votes {
		switch v.Vote {
		case VoteApprove:
			tally.ApproveVotes++
		case VoteReject:
			tally.RejectVotes++
		}
	}
	tally.PendingVotes = committeeSize - tally.ApproveVotes - tally.RejectVotes
	if tally.PendingVotes < 0 {
		tally.PendingVotes = 0
	}
	if committeeSize > 0 {
		if tally.ApproveVotes >= tally.Majority {
			tally.Outcome = OutcomeApproved
		} else if tally.RejectVotes >= tally.Majority {
			tally.Outcome = OutcomeRejected
		}
	}
	return tally
}

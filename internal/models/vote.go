package models

import "time"

// ExceptionVote represents one row of the append-only vote log.
type ExceptionVote struct {
	VoteID  string    `db:"vote_id"`
	AssetID string    `db:"asset_id"`
	TrustID string    `db:"trust_id"`
	Round   int       `db:"round"`
	VoterID string    `db:"voter_id"`
	Vote    string    `db:"vote"`
	Reason  string    `db:"reason"`
	CastAt  time.Time `db:"cast_at"`
}

package domain

import "time"

// SessionType classifies a governing-committee session.
type SessionType string

const (
	SessionQuarterly     SessionType = "QUARTERLY"
	SessionExtraordinary SessionType = "EXTRAORDINARY"
	SessionSpecial       SessionType = "SPECIAL"
)

// SessionStatus is the lifecycle of a committee session.
type SessionStatus string

const (
	SessionScheduled  SessionStatus = "SCHEDULED"
	SessionInProgress SessionStatus = "IN_PROGRESS"
	SessionCompleted  SessionStatus = "COMPLETED"
	SessionCancelled  SessionStatus = "CANCELLED"
)

// ComiteSession is a scheduled or held session of a trust's governing
// committee. Cancelled quarterly sessions do not satisfy their quarter
// window.
type ComiteSession struct {
	SessionID   string        `json:"sessionID"`
	TrustID     string        `json:"trustID"`
	SessionDate time.Time     `json:"sessionDate"`
	SessionType SessionType   `json:"sessionType"`
	Status      SessionStatus `json:"status"`
	Quorum      bool          `json:"quorum"`
	Attendees   []string      `json:"attendees"` // ActorID list
	Location    string        `json:"location,omitempty"`
	Minutes     string        `json:"minutes,omitempty"`
	AuditFields
}

package models

import "time"

// ComiteSession represents a committee session row.
// Attendees is persisted as a text[] column via pgx.
type ComiteSession struct {
	SessionID   string    `db:"session_id"`
	TrustID     string    `db:"trust_id"`
	SessionDate time.Time `db:"session_date"`
	SessionType string    `db:"session_type"`
	Status      string    `db:"status"`
	Quorum      bool      `db:"quorum"`
	Attendees   []string  `db:"attendees"`
	Location    string    `db:"location"`
	Minutes     string    `db:"minutes"`
	AuditFields
}

package domain

import "time"

// AlertSeverity grades an alert for presentation.
type AlertSeverity string

const (
	SeverityInfo    AlertSeverity = "INFO"
	SeverityWarning AlertSeverity = "WARNING"
	SeverityError   AlertSeverity = "ERROR"
)

// AlertKind names the event that produced an alert.
type AlertKind string

const (
	AlertNonCompliantAsset AlertKind = "NON_COMPLIANT_ASSET"
	AlertExceptionApproved AlertKind = "EXCEPTION_APPROVED"
	AlertExceptionRejected AlertKind = "EXCEPTION_REJECTED"
	AlertVotePending       AlertKind = "VOTE_PENDING"
	AlertLimitWarning      AlertKind = "LIMIT_WARNING"
	AlertLimitCritical     AlertKind = "LIMIT_CRITICAL"
)

// Alert is a notification addressed to one actor about one trust or asset.
type Alert struct {
	AlertID   string        `json:"alertID"`
	TrustID   string        `json:"trustID"`
	AssetID   string        `json:"assetID,omitempty"`
	ActorID   string        `json:"actorID"`
	Kind      AlertKind     `json:"kind"`
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message"`
	IsRead    bool          `json:"isRead"`
	CreatedAt time.Time     `json:"createdAt"`
}

package services

import (
	"context"

	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// AlertSvcFacade defines operations on governance alerts.
type AlertSvcFacade interface {
	// ListAlerts retrieves a paginated list of an actor's alerts, newest first.
	ListAlerts(ctx context.Context, actorID string, limit int, offset int) ([]domain.Alert, error)

	// CountUnread counts an actor's unread alerts.
	CountUnread(ctx context.Context, actorID string) (int, error)

	// MarkRead marks one alert as read, scoped to its recipient.
	MarkRead(ctx context.Context, actorID string, alertID string) error

	// NotifyTrust fans an alert out to every active fiduciary and committee
	// member of a trust, one row per recipient.
	NotifyTrust(ctx context.Context, trustID string, assetID string, kind domain.AlertKind, severity domain.AlertSeverity, message string) error
}

package repositories

import (
	"context"

	"github.com/trustops/trust_governance_app/internal/core/domain"
)

// AlertReader defines read operations for alert data
type AlertReader interface {
	// ListAlertsByActor retrieves a paginated list of an actor's alerts,
	// newest first.
	ListAlertsByActor(ctx context.Context, actorID string, limit int, offset int) ([]domain.Alert, error)

	// CountUnreadAlerts counts an actor's unread alerts.
	CountUnreadAlerts(ctx context.Context, actorID string) (int, error)
}

// AlertWriter defines write operations for alert data
type AlertWriter interface {
	// SaveAlerts persists a batch of alerts. Fan-out to a committee produces
	// one row per recipient.
	SaveAlerts(ctx context.Context, alerts []domain.Alert) error

	// MarkAlertRead marks one alert as read, scoped to its recipient.
	MarkAlertRead(ctx context.Context, alertID string, actorID string) error
}

// AlertRepositoryFacade combines all alert-related repository interfaces
// This is a facade for clients that need access to all operations
type AlertRepositoryFacade interface {
	AlertReader
	AlertWriter
}

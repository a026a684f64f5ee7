package mapping

import (
	"database/sql"

	"github.com/trustops/trust_governance_app/internal/core/domain"
	"github.com/trustops/trust_governance_app/internal/models"
)

// ToModelAlert converts a domain Alert to a model Alert
func ToModelAlert(d domain.Alert) models.Alert {
	m := models.Alert{
		AlertID:   d.AlertID,
		TrustID:   d.TrustID,
		ActorID:   d.ActorID,
		Kind:      string(d.Kind),
		Severity:  string(d.Severity),
		Message:   d.Message,
		IsRead:    d.IsRead,
		CreatedAt: d.CreatedAt,
	}
	if d.AssetID != "" {
		m.AssetID = sql.NullString{String: d.AssetID, Valid: true}
	}
	return m
}

// ToDomainAlert converts a model Alert to a domain Alert
func ToDomainAlert(m models.Alert) domain.Alert {
	return domain.Alert{
		AlertID:   m.AlertID,
		TrustID:   m.TrustID,
		AssetID:   m.AssetID.String,
		ActorID:   m.ActorID,
		Kind:      domain.AlertKind(m.Kind),
		Severity:  domain.AlertSeverity(m.Severity),
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainAlertSlice converts a slice of model Alerts to domain Alerts
func ToDomainAlertSlice(ms []models.Alert) []domain.Alert {
	ds := make([]domain.Alert, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAlert(m)
	}
	return ds
}

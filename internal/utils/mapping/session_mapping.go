package mapping

import (
	"github.com/trustops/trust_governance_app/internal/core/domain"
	"github.com/trustops/trust_governance_app/internal/models"
)

// ToModelComiteSession converts a domain ComiteSession to a model ComiteSession
func ToModelComiteSession(d domain.ComiteSession) models.ComiteSession {
	return models.ComiteSession{
		SessionID:   d.SessionID,
		TrustID:     d.TrustID,
		SessionDate: d.SessionDate,
		SessionType: string(d.SessionType),
		Status:      string(d.Status),
		Quorum:      d.Quorum,
		Attendees:   d.Attendees,
		Location:    d.Location,
		Minutes:     d.Minutes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainComiteSession converts a model ComiteSession to a domain ComiteSession
func ToDomainComiteSession(m models.ComiteSession) domain.ComiteSession {
	return domain.ComiteSession{
		SessionID:   m.SessionID,
		TrustID:     m.TrustID,
		SessionDate: m.SessionDate,
		SessionType: domain.SessionType(m.SessionType),
		Status:      domain.SessionStatus(m.Status),
		Quorum:      m.Quorum,
		Attendees:   m.Attendees,
		Location:    m.Location,
		Minutes:     m.Minutes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainComiteSessionSlice converts a slice of model ComiteSessions to domain ComiteSessions
func ToDomainComiteSessionSlice(ms []models.ComiteSession) []domain.ComiteSession {
	ds := make([]domain.ComiteSession, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainComiteSession(m)
	}
	return ds
}

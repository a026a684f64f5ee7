package mapping

import (
	"github.com/trustops/trust_governance_app/internal/core/domain"
	"github.com/trustops/trust_governance_app/internal/models"
)

// ToModelTrust converts a domain Trust to a model Trust
func ToModelTrust(d domain.Trust) models.Trust {
	return models.Trust{
		TrustID:           d.TrustID,
		Name:              d.Name,
		CurrencyCode:      d.CurrencyCode,
		InitialCapital:    d.InitialCapital,
		BondLimitPercent:  d.BondLimitPercent,
		OtherLimitPercent: d.OtherLimitPercent,
		RequiresConsensus: d.RequiresConsensus,
		CommitteeSize:     d.CommitteeSize,
		ConstitutionDate:  d.ConstitutionDate,
		MaxTermYears:      d.MaxTermYears,
		TermType:          string(d.TermType),
		Status:            string(d.Status),
		IsActive:          d.IsActive,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTrust converts a model Trust to a domain Trust
func ToDomainTrust(m models.Trust) domain.Trust {
	return domain.Trust{
		TrustID:           m.TrustID,
		Name:              m.Name,
		CurrencyCode:      m.CurrencyCode,
		InitialCapital:    m.InitialCapital,
		BondLimitPercent:  m.BondLimitPercent,
		OtherLimitPercent: m.OtherLimitPercent,
		RequiresConsensus: m.RequiresConsensus,
		CommitteeSize:     m.CommitteeSize,
		ConstitutionDate:  m.ConstitutionDate,
		MaxTermYears:      m.MaxTermYears,
		TermType:          domain.TermType(m.TermType),
		Status:            domain.TrustStatus(m.Status),
		IsActive:          m.IsActive,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTrustSlice converts a slice of model Trusts to a slice of domain Trusts
func ToDomainTrustSlice(ms []models.Trust) []domain.Trust {
	ds := make([]domain.Trust, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTrust(m)
	}
	return ds
}

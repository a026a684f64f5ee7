package mapping

import (
	"database/sql"
	"time"

	"github.com/trustops/trust_governance_app/internal/core/domain"
	"github.com/trustops/trust_governance_app/internal/models"
)

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	m := models.Asset{
		AssetID:          d.AssetID,
		TrustID:          d.TrustID,
		Category:         string(d.Category),
		Value:            d.Value,
		Description:      d.Description,
		ComplianceStatus: string(d.ComplianceStatus),
		VoteRound:        d.VoteRound,
		RegisteredAt:     d.RegisteredAt,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
	if d.BeneficiaryID != "" {
		m.BeneficiaryID = sql.NullString{String: d.BeneficiaryID, Valid: true}
	}
	if d.ResolutionReason != "" {
		m.ResolutionReason = sql.NullString{String: d.ResolutionReason, Valid: true}
	}
	if d.ResolvedBy != "" {
		m.ResolvedBy = sql.NullString{String: d.ResolvedBy, Valid: true}
	}
	if d.ResolvedAt != nil {
		m.ResolvedAt = sql.NullTime{Time: *d.ResolvedAt, Valid: true}
	}
	return m
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	d := domain.Asset{
		AssetID:          m.AssetID,
		TrustID:          m.TrustID,
		Category:         domain.AssetCategory(m.Category),
		Value:            m.Value,
		Description:      m.Description,
		ComplianceStatus: domain.ComplianceStatus(m.ComplianceStatus),
		BeneficiaryID:    m.BeneficiaryID.String,
		VoteRound:        m.VoteRound,
		ResolutionReason: m.ResolutionReason.String,
		ResolvedBy:       m.ResolvedBy.String,
		RegisteredAt:     m.RegisteredAt,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
	if m.ResolvedAt.Valid {
		t := m.ResolvedAt.Time.UTC()
		d.ResolvedAt = &t
	}
	return d
}

// ToDomainAssetSlice converts a slice of model Assets to a slice of domain Assets
func ToDomainAssetSlice(ms []models.Asset) []domain.Asset {
	ds := make([]domain.Asset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAsset(m)
	}
	return ds
}

// nullTimePtr is shared by mappings that expose nullable timestamps.
func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
